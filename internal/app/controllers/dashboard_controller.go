package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/chart"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
)

// DashboardLoader loads the dashboard state
type DashboardLoader interface {
	Load(ctx context.Context) services.DashboardState
}

// ChartSource exposes the chart currently displayed
type ChartSource interface {
	Snapshot() chart.Snapshot
}

// DashboardController serves the admin dashboard
type DashboardController struct {
	dashboard DashboardLoader
	chart     ChartSource
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboard DashboardLoader, chart ChartSource) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
		chart:     chart,
	}
}

func newDashboardResponse(state services.DashboardState) dto.DashboardResponse {
	return dto.DashboardResponse{
		Loading:    state.Loading,
		Error:      state.Error,
		Generation: state.Generation,
		Statistics: state.Statistics,
		Summary:    state.Summary,
		LoadedAt:   state.LoadedAt,
	}
}

// GetDashboard loads fresh dashboard statistics
// @Summary Admin dashboard
// @Description Loads courses, instructors, messages and enrollments and aggregates them.
// @Description A fetch failure still answers 200 with success=false and whatever could be loaded.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.DashboardResponse} "Dashboard state"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Router /admin/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	state := c.dashboard.Load(ctx.Request.Context())
	resp := newDashboardResponse(state)

	if state.Error != "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, state.Error).
			WithSeverity(dto.ErrorSeverityWarning)
		ctx.JSON(http.StatusOK, dto.NewRecoveredResponse(resp, detail))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(resp, "Dashboard loaded"))
}

// GetChart returns the enrollment chart as last rendered
// @Summary Enrollment chart
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.ChartResponse} "Chart snapshot"
// @Router /admin/dashboard/chart [get]
func (c *DashboardController) GetChart(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.ChartResponse{Chart: c.chart.Snapshot()}, "Chart retrieved"))
}
