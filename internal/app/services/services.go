package services

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
)

// Services defined in this package:
// - DashboardService: loads and aggregates the admin dashboard
// - HomeService: builds the landing page, gating instructors on the viewer
// - ReviewService: lists and stores visitor reviews
// - CatalogService: read access to courses, instructors, messages and enrollments
// - AuthService: login and logout

// CourseSource lists courses
type CourseSource interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

// InstructorSource lists instructors
type InstructorSource interface {
	ListInstructors(ctx context.Context) ([]models.Instructor, error)
}

// EnrollmentSource lists the enrollments of one course
type EnrollmentSource interface {
	ListEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error)
}

// MessageSource lists contact messages
type MessageSource interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
}

// ReviewStore lists and persists reviews
type ReviewStore interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
}

// Viewer is what page gating needs to know about the caller
type Viewer interface {
	IsLoggedIn() bool
	IsAdmin() bool
	IsApprenant() bool
}
