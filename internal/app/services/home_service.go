package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"golang.org/x/sync/errgroup"
)

// HomeService builds the landing page
type HomeService interface {
	Load(ctx context.Context, viewer Viewer) dto.HomeResponse
}

type homeServiceImpl struct {
	reviews     ReviewStore
	courses     CourseSource
	instructors InstructorSource
	logger      zerolog.Logger
}

// NewHomeService creates a new home service instance
func NewHomeService(reviews ReviewStore, courses CourseSource, instructors InstructorSource, logger zerolog.Logger) HomeService {
	return &homeServiceImpl{
		reviews:     reviews,
		courses:     courses,
		instructors: instructors,
		logger:      logger,
	}
}

// Load fetches reviews and courses for everyone, and instructors only for a
// logged-in administrator. Fetch failures leave the matching list empty.
func (s *homeServiceImpl) Load(ctx context.Context, viewer Viewer) dto.HomeResponse {
	view := dto.HomeResponse{
		IsLoggedIn:  viewer.IsLoggedIn(),
		IsApprenant: viewer.IsApprenant(),
		Reviews:     []models.Review{},
		Courses:     []models.Course{},
		Instructors: []dto.InstructorCard{},
	}

	var g errgroup.Group
	g.Go(func() error {
		reviews, err := s.reviews.ListReviews(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to load reviews for home page")
			return nil
		}
		if reviews != nil {
			view.Reviews = reviews
		}
		return nil
	})
	g.Go(func() error {
		courses, err := s.courses.ListCourses(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to load courses for home page")
			return nil
		}
		if courses != nil {
			view.Courses = courses
		}
		return nil
	})
	if viewer.IsLoggedIn() && viewer.IsAdmin() {
		g.Go(func() error {
			instructors, err := s.instructors.ListInstructors(ctx)
			if err != nil {
				s.logger.Error().Err(err).Msg("Failed to load instructors for home page")
				return nil
			}
			cards := make([]dto.InstructorCard, 0, len(instructors))
			for _, i := range instructors {
				cards = append(cards, dto.NewInstructorCard(i))
			}
			view.Instructors = cards
			return nil
		})
	}
	_ = g.Wait()

	return view
}
