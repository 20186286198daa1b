// Package chart holds the enrollment trend shown on the admin dashboard and
// pushes every re-render to websocket subscribers.
package chart

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Topic is the websocket topic chart updates are published on.
const Topic = "dashboard.chart"

// UpdateMessageType tags chart updates on the websocket.
const UpdateMessageType = "chart.update"

const publishTimeout = 2 * time.Second

// Renderer draws a labelled series. Calling Render again replaces the
// previous drawing.
type Renderer interface {
	Render(labels []string, series []int)
}

// Publisher fans a payload out to subscribers of a topic.
type Publisher interface {
	Publish(ctx context.Context, topic, msgType string, payload interface{}) (bool, error)
}

// Dataset mirrors the line dataset a Chart.js client expects.
type Dataset struct {
	Label           string  `json:"label" example:"Inscriptions"`
	Data            []int   `json:"data"`
	BorderColor     string  `json:"borderColor" example:"#3b82f6"`
	BackgroundColor string  `json:"backgroundColor" example:"rgba(59, 130, 246, 0.2)"`
	Tension         float64 `json:"tension" example:"0.3"`
	Fill            bool    `json:"fill" example:"true"`
}

// Options are the display options sent alongside the datasets.
type Options struct {
	Responsive     bool   `json:"responsive"`
	BeginAtZero    bool   `json:"beginAtZero"`
	LegendPosition string `json:"legendPosition" example:"top"`
}

// Snapshot is the chart currently on display.
type Snapshot struct {
	Ready     bool      `json:"ready"`
	Labels    []string  `json:"labels"`
	Datasets  []Dataset `json:"datasets"`
	Options   Options   `json:"options"`
	Renders   int       `json:"renders"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultOptions returns the dashboard's line chart presentation.
func DefaultOptions() Options {
	return Options{Responsive: true, BeginAtZero: true, LegendPosition: "top"}
}

// EnrollmentDataset builds the single enrollment line dataset.
func EnrollmentDataset(series []int) Dataset {
	return Dataset{
		Label:           "Inscriptions",
		Data:            series,
		BorderColor:     "#3b82f6",
		BackgroundColor: "rgba(59, 130, 246, 0.2)",
		Tension:         0.3,
		Fill:            true,
	}
}

// Board is the server-side chart surface. Until Init is called Render does
// nothing, the way a chart without a canvas cannot draw.
type Board struct {
	mu        sync.RWMutex
	ready     bool
	snapshot  Snapshot
	publisher Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewBoard creates a board; publisher may be nil.
func NewBoard(publisher Publisher, logger zerolog.Logger) *Board {
	return &Board{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		snapshot:  Snapshot{Options: DefaultOptions()},
	}
}

// Init attaches the drawing surface. Calling it twice is harmless.
func (b *Board) Init() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = true
	b.snapshot.Ready = true
}

// Ready reports whether Init has been called.
func (b *Board) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ready
}

// Render replaces the displayed series and publishes it.
func (b *Board) Render(labels []string, series []int) {
	b.mu.Lock()
	if !b.ready {
		b.mu.Unlock()
		b.logger.Debug().Msg("Chart not initialised, skipping render")
		return
	}
	b.snapshot.Labels = append([]string(nil), labels...)
	b.snapshot.Datasets = []Dataset{EnrollmentDataset(append([]int(nil), series...))}
	b.snapshot.Renders++
	b.snapshot.UpdatedAt = b.now().UTC()
	snap := b.copyLocked()
	b.mu.Unlock()

	if b.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if _, err := b.publisher.Publish(ctx, Topic, UpdateMessageType, snap); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to publish chart update")
	}
}

// Snapshot returns a copy of the chart on display.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.copyLocked()
}

func (b *Board) copyLocked() Snapshot {
	snap := b.snapshot
	snap.Labels = append([]string(nil), b.snapshot.Labels...)
	snap.Datasets = make([]Dataset, len(b.snapshot.Datasets))
	for i, ds := range b.snapshot.Datasets {
		ds.Data = append([]int(nil), ds.Data...)
		snap.Datasets[i] = ds
	}
	return snap
}
