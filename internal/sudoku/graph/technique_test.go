package graph

import (
	"context"
	"testing"

	"sudoku-graph/pkg/constants"
)

// stubTechnique never reports progress, to exercise the driver's stall path.
type stubTechnique struct{ name string }

func (s stubTechnique) Name() string                                  { return s.name }
func (s stubTechnique) Tier() string                                  { return constants.TierSimple }
func (s stubTechnique) Digest(p *Puzzle) (*EventNode, bool, error) { return nil, false, nil }

func TestDriverStallsWithNoTechniques(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	driver := NewDriver(nil, stubTechnique{name: "noop"})
	res, err := driver.Run(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != constants.StatusStalled {
		t.Fatalf("expected stalled, got %s", res.Status)
	}
}

type recordingObserver struct {
	calls []string
}

func (r *recordingObserver) ObserveStep(name string, falsified int) {
	r.calls = append(r.calls, name)
}

func TestDriverNotifiesObserverOnProgress(t *testing.T) {
	values := make([]int, 16)
	values[0] = 1
	p, err := NewPuzzle(2, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obs := &recordingObserver{}
	registry := NewTechniqueRegistry()
	driver := NewDriverFromRegistry(registry, obs)
	if _, err := driver.Run(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs.calls) == 0 {
		t.Error("expected the observer to be notified of at least one step")
	}
}

func TestDriverRespectsCancellation(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	driver := NewDriver(nil, stubTechnique{name: "noop"})
	_, err = driver.Run(ctx, p)
	if err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}
