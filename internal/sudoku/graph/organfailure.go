package graph

import (
	"fmt"

	"sudoku-graph/pkg/constants"
)

// OrganFailure is the safety-net technique covering both "naked single" and
// "hidden single" in one uniform rule: any fact — cell, row, column, box —
// that has collapsed to exactly one surviving claim proves that claim true,
// which Fact.validateFinalState already knows how to cascade. Ordinarily
// Fact.remove calls validateFinalState itself the moment a fact crosses from
// two claims to one, so this technique rarely has work to do; its job is to
// catch the cases where a fact reached size one WITHOUT going through
// remove — such as after Fact.merge, which ejects claims from a fact
// without validating the survivor on the caller's behalf.
type OrganFailure struct{}

// NewOrganFailure returns a fresh OrganFailure technique.
func NewOrganFailure() *OrganFailure { return &OrganFailure{} }

func (t *OrganFailure) Name() string { return "organ_failure" }
func (t *OrganFailure) Tier() string { return constants.TierSimple }

func (t *OrganFailure) Digest(p *Puzzle) (*EventNode, bool, error) {
	for _, f := range p.FactStream() {
		if f.Size() != 1 {
			continue
		}
		se := NewSolutionEvent(fmt.Sprintf("organ_failure: %s fact %d has a sole surviving claim", f.Type, f.ID))
		f.validateFinalState(p, se.Top())
		evt, err := se.Finish()
		if err != nil {
			// Already fully cascaded by a prior remove(); nothing new here.
			continue
		}
		return evt, true, nil
	}
	return nil, false, nil
}
