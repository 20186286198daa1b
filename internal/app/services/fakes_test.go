package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var refNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

type fakeCourses struct {
	courses []models.Course
	err     error
	calls   atomic.Int32
	// block, when set, is waited on by the first call only
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeCourses) ListCourses(ctx context.Context) ([]models.Course, error) {
	if f.calls.Add(1) == 1 && f.block != nil {
		close(f.entered)
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range f.courses {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakeInstructors struct {
	instructors []models.Instructor
	err         error
	calls       atomic.Int32
}

func (f *fakeInstructors) ListInstructors(context.Context) ([]models.Instructor, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.instructors, nil
}

type fakeMessages struct {
	messages []models.Message
	err      error
}

func (f *fakeMessages) ListMessages(context.Context) ([]models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

type fakeEnrollments struct {
	byCourse map[int64][]models.Enrollment
	failFor  int64
	calls    atomic.Int32
}

func (f *fakeEnrollments) ListEnrollments(_ context.Context, courseID int64) ([]models.Enrollment, error) {
	f.calls.Add(1)
	if f.failFor != 0 && courseID == f.failFor {
		return nil, context.DeadlineExceeded
	}
	return f.byCourse[courseID], nil
}

type renderCall struct {
	labels []string
	series []int
}

type recordingRenderer struct {
	mu    sync.Mutex
	calls []renderCall
}

func (r *recordingRenderer) Render(labels []string, series []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, renderCall{labels: labels, series: series})
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type fakeReviews struct {
	reviews []models.Review
	listErr error
	err     error
	created []models.Review
}

func (f *fakeReviews) ListReviews(context.Context) ([]models.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reviews, nil
}

func (f *fakeReviews) CreateReview(_ context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	review.ID = int64(len(f.created) + 1)
	review.CreatedAt = refNow
	f.created = append(f.created, *review)
	return nil
}

type fakeUsers struct {
	users       map[string]*models.User
	lastLoginID int64
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLoginID = userID
	return nil
}
