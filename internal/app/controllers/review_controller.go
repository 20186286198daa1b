package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// ReviewController handles visitor reviews
type ReviewController struct {
	reviewService services.ReviewService
	logger        zerolog.Logger
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService, logger zerolog.Logger) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		logger:        logger,
	}
}

// ListReviews returns every review, newest first
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {object} dto.StructuredResponse{data=[]models.Review} "Reviews retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(reviews, "Reviews retrieved successfully"))
}

// CreateReview stores a review by the logged-in user
// @Summary Submit a review
// @Description Rating must be between 1 and 5 and the comment between 10 and 500 characters
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReviewInput true "Rating and comment"
// @Success 201 {object} dto.StructuredResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating or comment"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 502 {object} dto.ErrorResponse "Review could not be stored"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var input models.ReviewInput
	if !middleware.BindJSON(ctx, &input) {
		return
	}

	review, err := c.reviewService.Create(ctx.Request.Context(), middleware.ViewerFrom(ctx), input)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Review submission rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(review, "Review created"))
}
