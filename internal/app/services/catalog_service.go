package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseLookup resolves a course by id
type CourseLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// CatalogService gives read access to the platform records
type CatalogService interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Messages(ctx context.Context) ([]models.Message, error)
	CourseEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error)
}

type catalogServiceImpl struct {
	courses     CourseSource
	lookup      CourseLookup
	instructors InstructorSource
	messages    MessageSource
	enrollments EnrollmentSource
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	courses CourseSource,
	lookup CourseLookup,
	instructors InstructorSource,
	messages MessageSource,
	enrollments EnrollmentSource,
) CatalogService {
	return &catalogServiceImpl{
		courses:     courses,
		lookup:      lookup,
		instructors: instructors,
		messages:    messages,
		enrollments: enrollments,
	}
}

func (s *catalogServiceImpl) Courses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func (s *catalogServiceImpl) Instructors(ctx context.Context) ([]models.Instructor, error) {
	instructors, err := s.instructors.ListInstructors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	if instructors == nil {
		instructors = []models.Instructor{}
	}
	return instructors, nil
}

func (s *catalogServiceImpl) Messages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// CourseEnrollments lists the enrollments of an existing course
func (s *catalogServiceImpl) CourseEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}
	if _, err := s.lookup.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.ListEnrollments(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return enrollments, nil
}
