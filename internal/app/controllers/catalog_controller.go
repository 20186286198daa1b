package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CatalogController exposes courses, instructors, messages and enrollments
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.Courses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(courses, "Courses retrieved successfully"))
}

// ListInstructors godoc
// @Summary List instructors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=[]models.Instructor} "Instructors retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Router /admin/instructors [get]
func (c *CatalogController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.catalogService.Instructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(instructors, "Instructors retrieved successfully"))
}

// ListMessages godoc
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=[]models.Message} "Messages retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Router /admin/messages [get]
func (c *CatalogController) ListMessages(ctx *gin.Context) {
	messages, err := c.catalogService.Messages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(messages, "Messages retrieved successfully"))
}

// ListCourseEnrollments godoc
// @Summary List enrollments of a course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.StructuredResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id}/enrollments [get]
func (c *CatalogController) ListCourseEnrollments(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid course ID"))
		return
	}

	enrollments, err := c.catalogService.CourseEnrollments(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(enrollments, "Enrollments retrieved successfully"))
}
