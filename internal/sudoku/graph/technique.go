package graph

import (
	"context"
	"errors"

	"sudoku-graph/pkg/constants"
)

// Technique is one pluggable inference rule in the pipeline. Digest scans
// the puzzle for a single application of the technique; ok=false means it
// found nothing this call and the driver should try the next technique in
// order. Any non-nil error aborts the run; ErrUnsatisfiable additionally
// marks the result unsatisfiable.
type Technique interface {
	Name() string
	Tier() string
	Digest(p *Puzzle) (event *EventNode, ok bool, err error)
}

// StepObserver is the per-step instrumentation hook described in the spec's
// embedder-facing budget note: it is told which technique fired and how
// many claims it falsified, without the driver depending on any particular
// metrics backend.
type StepObserver interface {
	ObserveStep(technique string, falsified int)
}

// Result is the outcome of running the driver to a fixed point.
type Result struct {
	Status       string
	Steps        []*EventNode
	StepCount    int
	PoisonedFact FactID // valid only when Status == constants.StatusUnsatisfiable
}

// Driver runs an ordered technique pipeline to a fixed point: each cycle it
// tries techniques in order and, on the first one that makes progress,
// restarts from the front of the list rather than continuing where it left
// off. This keeps cheap techniques from being starved by the presence of
// expensive ones and matches the spec's restart-at-0-on-progress scheduling.
type Driver struct {
	techniques []Technique
	observer   StepObserver
}

// NewDriver builds a driver over techniques in pipeline order. observer may
// be nil.
func NewDriver(observer StepObserver, techniques ...Technique) *Driver {
	return &Driver{techniques: techniques, observer: observer}
}

// Run drives the pipeline to a fixed point, a proof of unsatisfiability, or
// the step cap, whichever comes first. ctx is checked cooperatively between
// steps so a caller (HTTP handler, CLI) can bound wall-clock time.
func (d *Driver) Run(ctx context.Context, p *Puzzle) (*Result, error) {
	res := &Result{}

	for res.StepCount < constants.MaxDriverSteps {
		select {
		case <-ctx.Done():
			res.Status = constants.StatusStalled
			return res, ctx.Err()
		default:
		}

		// Unsatisfiability is surfaced by the CellDeath technique itself, not
		// checked here: a top-of-loop short-circuit would return before
		// CellDeath ever runs, since poisoning a fact happens deep inside
		// Fact.remove with no error return of its own. Checking IsSolved
		// here is still safe — a poisoned puzzle never reports solved,
		// since the emptied fact's size is 0, not 1.
		if p.IsSolved() {
			res.Status = constants.StatusSolved
			return res, nil
		}

		progressed := false
		for _, t := range d.techniques {
			evt, ok, err := t.Digest(p)
			if err != nil {
				if evt != nil {
					res.Steps = append(res.Steps, evt)
					res.StepCount++
				}
				if errors.Is(err, ErrUnsatisfiable) {
					res.Status = constants.StatusUnsatisfiable
					if unsat, fid := p.Unsatisfiable(); unsat {
						res.PoisonedFact = fid
					}
				}
				return res, err
			}
			if !ok {
				continue
			}
			res.Steps = append(res.Steps, evt)
			res.StepCount++
			if d.observer != nil {
				d.observer.ObserveStep(t.Name(), evt.DeepFalse())
			}
			progressed = true
			break
		}

		if !progressed {
			res.Status = constants.StatusStalled
			return res, nil
		}
	}

	res.Status = constants.StatusMaxStepsReached
	return res, nil
}
