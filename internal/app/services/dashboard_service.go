package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/chart"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/statistics"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"golang.org/x/sync/errgroup"
)

// User-visible dashboard load errors
const (
	PrimaryFetchErrorMessage    = "Erreur lors du chargement des données principales"
	EnrollmentFetchErrorMessage = "Erreur lors du chargement des inscriptions"
)

// enrollmentFetchConcurrency bounds the per-course enrollment requests in flight
const enrollmentFetchConcurrency = 8

// DashboardState is the dashboard as the view renders it. Summary is set as
// soon as the primary wave succeeds; Statistics only when both waves do.
type DashboardState struct {
	Loading    bool                   `json:"loading"`
	Error      string                 `json:"error,omitempty"`
	Err        error                  `json:"-"`
	Generation uint64                 `json:"generation"`
	Summary    *statistics.Summary    `json:"summary,omitempty"`
	Statistics *statistics.Statistics `json:"statistics,omitempty"`
	LoadedAt   time.Time              `json:"loadedAt"`
}

// DashboardService fetches dashboard records in two waves, aggregates them
// and pushes the monthly trend to the chart.
type DashboardService struct {
	courses     CourseSource
	instructors InstructorSource
	enrollments EnrollmentSource
	messages    MessageSource
	renderer    chart.Renderer
	timeout     time.Duration
	now         func() time.Time
	logger      zerolog.Logger

	mu         sync.Mutex
	generation uint64
	state      DashboardState
}

// NewDashboardService creates a dashboard loader. renderer may be nil and
// a non-positive timeout disables the per-load deadline.
func NewDashboardService(
	courses CourseSource,
	instructors InstructorSource,
	enrollments EnrollmentSource,
	messages MessageSource,
	renderer chart.Renderer,
	timeout time.Duration,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		courses:     courses,
		instructors: instructors,
		enrollments: enrollments,
		messages:    messages,
		renderer:    renderer,
		timeout:     timeout,
		now:         time.Now,
		logger:      logger,
	}
}

// Current returns the last committed state.
func (s *DashboardService) Current() DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DashboardService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state.Loading = true
	s.state.Error = ""
	s.state.Err = nil
	s.state.Generation = s.generation
	return s.generation
}

// commit stores state if gen is still the latest load. The chart is
// rendered under the same lock so pushes follow commit order.
func (s *DashboardService) commit(gen uint64, state DashboardState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug().Uint64("generation", gen).Uint64("current", s.generation).Msg("Discarding stale dashboard load")
		return false
	}
	s.state = state
	if state.Statistics != nil && s.renderer != nil {
		s.renderer.Render(state.Statistics.MonthlyLabels, state.Statistics.MonthlyEnrollments)
	}
	return true
}

// Load runs a full fetch cycle. Fetch failures are recovered into the
// returned state rather than returned as errors. A load overtaken by a newer
// one is not committed and its result does not reach the chart.
func (s *DashboardService) Load(ctx context.Context) DashboardState {
	gen := s.begin()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	state := s.fetch(ctx, gen)
	state.Generation = gen
	state.Loading = false
	state.LoadedAt = s.now()
	s.commit(gen, state)
	return state
}

func (s *DashboardService) fetch(ctx context.Context, gen uint64) DashboardState {
	var (
		courses     []models.Course
		instructors []models.Instructor
		messages    []models.Message
	)

	primary, pctx := errgroup.WithContext(ctx)
	primary.Go(func() (err error) {
		courses, err = s.courses.ListCourses(pctx)
		return err
	})
	primary.Go(func() (err error) {
		instructors, err = s.instructors.ListInstructors(pctx)
		return err
	})
	primary.Go(func() (err error) {
		messages, err = s.messages.ListMessages(pctx)
		return err
	})
	if err := primary.Wait(); err != nil {
		s.logger.Error().Err(err).Uint64("generation", gen).Msg("Dashboard primary fetch failed")
		return DashboardState{
			Error: PrimaryFetchErrorMessage,
			Err:   fmt.Errorf("%w: %v", apperrors.ErrPrimaryFetchFailed, err),
		}
	}

	summary := statistics.Summarize(courses, instructors, messages)

	perCourse := make([][]models.Enrollment, len(courses))
	wave, wctx := errgroup.WithContext(ctx)
	wave.SetLimit(enrollmentFetchConcurrency)
	for i, c := range courses {
		wave.Go(func() error {
			list, err := s.enrollments.ListEnrollments(wctx, c.ID)
			if err != nil {
				return fmt.Errorf("course %d: %w", c.ID, err)
			}
			perCourse[i] = list
			return nil
		})
	}
	if err := wave.Wait(); err != nil {
		s.logger.Error().Err(err).Uint64("generation", gen).Msg("Dashboard enrollment fetch failed")
		return DashboardState{
			Error:   EnrollmentFetchErrorMessage,
			Err:     fmt.Errorf("%w: %v", apperrors.ErrEnrollmentFetchFailed, err),
			Summary: &summary,
		}
	}

	var enrollments []models.Enrollment
	for _, list := range perCourse {
		enrollments = append(enrollments, list...)
	}

	st := statistics.Aggregate(statistics.Input{
		Courses:     courses,
		Instructors: instructors,
		Enrollments: enrollments,
		Messages:    messages,
	}, s.now())

	s.logger.Info().
		Uint64("generation", gen).
		Int("courses", st.TotalCourses).
		Int("enrollments", st.TotalEnrollments).
		Msg("Dashboard loaded")

	return DashboardState{Summary: &st.Summary, Statistics: &st}
}
