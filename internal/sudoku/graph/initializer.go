package graph

import (
	"fmt"

	"sudoku-graph/pkg/constants"
)

// Initializer is the pipeline's first technique: it forces each given's
// Init fact, one per Digest call, propagating the consequence across the
// given's row, column, box and cell facts. Init facts are already size one
// at construction, so unlike every other fact type they never trigger
// Fact.validateFinalState on their own — nothing ever removes from them
// until a contradiction empties one. Initializer is what actually pushes
// the "this claim is given" consequence out into the graph.
type Initializer struct {
	done map[FactID]bool
}

// NewInitializer returns a fresh Initializer technique, one per solve.
func NewInitializer() *Initializer {
	return &Initializer{done: make(map[FactID]bool)}
}

func (t *Initializer) Name() string { return "initializer" }
func (t *Initializer) Tier() string { return constants.TierSimple }

func (t *Initializer) Digest(p *Puzzle) (*EventNode, bool, error) {
	for _, f := range p.FactStream() {
		if f.Type != RuleInit || t.done[f.ID] || f.Size() != 1 {
			continue
		}
		t.done[f.ID] = true

		var survivor ClaimID
		for _, c := range f.Claims() {
			survivor = c
		}
		se := NewSolutionEvent(fmt.Sprintf("initializer: forcing given claim %d", survivor))
		survivorClaim := p.claim(survivor)
		for _, fid := range survivorClaim.Neighbors() {
			if fid == f.ID {
				continue
			}
			other := p.fact(fid)
			for _, c := range other.Claims() {
				if c == survivor {
					continue
				}
				p.claim(c).SetFalse(p, se.Top())
			}
		}

		evt, err := se.Finish()
		if err != nil {
			// Nothing left to eliminate for this given (its neighbors were
			// already pruned by an earlier given's cascade); move on without
			// reporting a step.
			continue
		}
		return evt, true, nil
	}
	return nil, false, nil
}
