// Package reviewflow implements the review form a visitor fills in: a
// rating and comment pair that is validated locally, submitted once, and
// either prepended to the displayed reviews or kept for another try.
package reviewflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// FailureNotice is shown to the visitor when a submission is rejected.
const FailureNotice = "Erreur lors de la soumission de l’avis. Veuillez réessayer."

// ErrAlreadySubmitting is returned when Submit is called while a submission is in flight.
var ErrAlreadySubmitting = errors.New("review submission already in progress")

// State is a step of the submission flow.
type State int

const (
	Editing State = iota
	Submitting
	Accepted
	Rejected
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Creator persists a review and returns the stored record.
type Creator interface {
	CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, input models.ReviewInput) (*models.Review, error)

// CreateReview calls f.
func (f CreatorFunc) CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error) {
	return f(ctx, input)
}

// Form holds the review form state and the reviews on display, newest first.
type Form struct {
	mu             sync.Mutex
	state          State
	input          models.ReviewInput
	selectedRating int
	reviews        []models.Review
	notice         string
	onTransition   func(from, to State)
	logger         zerolog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithTransitionHook registers fn to be called on every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(f *Form) { f.onTransition = fn }
}

// WithLogger sets the logger used for rejected submissions.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) { f.logger = logger }
}

// NewForm returns a form in Editing state with default values, showing reviews.
func NewForm(reviews []models.Review, opts ...Option) *Form {
	f := &Form{
		reviews: append([]models.Review(nil), reviews...),
		logger:  zerolog.Nop(),
	}
	f.resetLocked()
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) resetLocked() {
	f.input = models.ReviewInput{Rating: models.ReviewDefaultRating}
	f.selectedRating = models.ReviewDefaultRating
}

func (f *Form) setStateLocked(to State) {
	from := f.state
	f.state = to
	if f.onTransition != nil {
		f.onTransition(from, to)
	}
}

// SelectRating sets both the highlighted star and the form rating.
func (f *Form) SelectRating(rating int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectedRating = rating
	f.input.Rating = rating
}

// SetComment replaces the comment text.
func (f *Form) SetComment(comment string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Comment = comment
}

// Input returns the current form values.
func (f *Form) Input() models.ReviewInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// SelectedRating returns the highlighted star value.
func (f *Form) SelectedRating() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedRating
}

// State returns the current step.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Notice returns the failure notice of the last submission, if any.
func (f *Form) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Reviews returns the displayed reviews, newest first.
func (f *Form) Reviews() []models.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Review(nil), f.reviews...)
}

// Validate checks the current values against the rating and comment bounds.
func (f *Form) Validate() error {
	return f.Input().Validate()
}

// CanSubmit reports whether Submit would reach the creator.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == Editing && f.input.Validate() == nil
}

// Submit validates the form and hands it to creator. Invalid input never
// reaches the creator. On success the stored review is prepended and the
// form reset; on failure the input is kept and the error wraps
// apperrors.ErrSubmissionFailed.
func (f *Form) Submit(ctx context.Context, creator Creator) (*models.Review, error) {
	f.mu.Lock()
	if f.state != Editing {
		f.mu.Unlock()
		return nil, ErrAlreadySubmitting
	}
	if err := f.input.Validate(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	input := f.input
	f.notice = ""
	f.setStateLocked(Submitting)
	f.mu.Unlock()

	review, err := creator.CreateReview(ctx, input)
	if err == nil && review == nil {
		err = errors.New("empty response")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.notice = FailureNotice
		f.setStateLocked(Rejected)
		f.setStateLocked(Editing)
		f.logger.Error().Err(err).Int("rating", input.Rating).Msg("Review submission failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSubmissionFailed, err)
	}

	f.reviews = append([]models.Review{*review}, f.reviews...)
	f.resetLocked()
	f.setStateLocked(Accepted)
	f.setStateLocked(Editing)
	return review, nil
}
