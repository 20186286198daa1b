package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// HomeController serves the landing page
type HomeController struct {
	homeService services.HomeService
}

// NewHomeController creates a new HomeController
func NewHomeController(homeService services.HomeService) *HomeController {
	return &HomeController{homeService: homeService}
}

// GetHome returns the landing page payload
// @Summary Landing page
// @Description Returns reviews and courses. Instructors are only listed for a logged-in administrator.
// @Tags home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=dto.HomeResponse} "Landing page"
// @Router /home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	view := c.homeService.Load(ctx.Request.Context(), middleware.ViewerFrom(ctx))
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(view, "Home loaded"))
}
