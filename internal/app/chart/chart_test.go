package chart

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type recordingPublisher struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, topic, msgType string, payload interface{}) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if topic != Topic || msgType != UpdateMessageType {
		return false, nil
	}
	p.payloads = append(p.payloads, payload)
	return true, nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func TestRenderBeforeInitIsNoop(t *testing.T) {
	pub := &recordingPublisher{}
	board := NewBoard(pub, zerolog.Nop())

	board.Render([]string{"oct. 2026"}, []int{3})

	snap := board.Snapshot()
	if snap.Ready || snap.Renders != 0 || len(snap.Labels) != 0 {
		t.Fatalf("expected untouched board, got %+v", snap)
	}
	if pub.count() != 0 {
		t.Fatalf("expected no publish before init")
	}
}

func TestRenderReplacesPreviousSeries(t *testing.T) {
	pub := &recordingPublisher{}
	board := NewBoard(pub, zerolog.Nop())
	board.Init()
	board.Init()

	board.Render([]string{"sept. 2026", "oct. 2026"}, []int{1, 2})
	board.Render([]string{"sept. 2026", "oct. 2026"}, []int{4, 5})

	snap := board.Snapshot()
	if snap.Renders != 2 {
		t.Fatalf("expected 2 renders, got %d", snap.Renders)
	}
	if len(snap.Datasets) != 1 {
		t.Fatalf("expected a single dataset, got %d", len(snap.Datasets))
	}
	ds := snap.Datasets[0]
	if ds.Label != "Inscriptions" || ds.Data[0] != 4 || ds.Data[1] != 5 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
	if ds.BorderColor != "#3b82f6" || ds.Tension != 0.3 || !ds.Fill {
		t.Fatalf("unexpected presentation %+v", ds)
	}
	if !snap.Options.BeginAtZero || snap.Options.LegendPosition != "top" {
		t.Fatalf("unexpected options %+v", snap.Options)
	}
	if pub.count() != 2 {
		t.Fatalf("expected 2 publishes, got %d", pub.count())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	board := NewBoard(nil, zerolog.Nop())
	board.Init()
	series := []int{1, 2}
	board.Render([]string{"a", "b"}, series)
	series[0] = 99

	snap := board.Snapshot()
	snap.Datasets[0].Data[1] = 42
	again := board.Snapshot()
	if again.Datasets[0].Data[0] != 1 || again.Datasets[0].Data[1] != 2 {
		t.Fatalf("board state leaked: %+v", again.Datasets[0].Data)
	}
}
