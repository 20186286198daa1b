package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// UserLookup resolves a user by id
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// ReviewService lists and stores visitor reviews
type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, viewer auth.Viewer, input models.ReviewInput) (*models.Review, error)
}

type reviewServiceImpl struct {
	store  ReviewStore
	users  UserLookup
	logger zerolog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(store ReviewStore, users UserLookup, logger zerolog.Logger) ReviewService {
	return &reviewServiceImpl{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// List returns every review, newest first
func (s *reviewServiceImpl) List(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.store.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// Create validates input and stores it as a review by viewer
func (s *reviewServiceImpl) Create(ctx context.Context, viewer auth.Viewer, input models.ReviewInput) (*models.Review, error) {
	if !viewer.IsLoggedIn() {
		return nil, apperrors.ErrTokenInvalid
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	review := &models.Review{
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	userID := viewer.UserID
	review.UserID = &userID

	if u, err := s.users.GetByID(ctx, viewer.UserID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", viewer.UserID).Msg("Could not resolve review author name")
	} else {
		review.AuthorName = u.FullName()
	}

	if err := s.store.CreateReview(ctx, review); err != nil {
		s.logger.Error().Err(err).Int64("userID", viewer.UserID).Msg("Failed to store review")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSubmissionFailed, err)
	}

	s.logger.Info().Int64("reviewID", review.ID).Int("rating", review.Rating).Msg("Review created")
	return review, nil
}
