package graph

import (
	"fmt"

	"sudoku-graph/pkg/constants"
)

// ValueClaim covers pointing pairs and box-line reduction in one rule. Both
// are the same observation from opposite sides: whenever every surviving
// claim for a digit within one structural fact is also confined to a
// SECOND structural fact, the digit can be eliminated from the rest of that
// second fact. A box fact whose claims all share a row lets the digit be
// claimed against the rest of that row; a row (or column) fact whose claims
// all share a box lets the digit be claimed against the rest of that box.
// This is distinct from Sledgehammer's generalized subset elimination
// because it reasons about a claim's derived row/column/box coordinate
// rather than matching whole registered facts against each other.
type ValueClaim struct{}

// NewValueClaim returns a fresh ValueClaim technique.
func NewValueClaim() *ValueClaim { return &ValueClaim{} }

func (t *ValueClaim) Name() string { return "value_claim" }
func (t *ValueClaim) Tier() string { return constants.TierSimple }

func (t *ValueClaim) Digest(p *Puzzle) (*EventNode, bool, error) {
	for _, f := range p.FactStream() {
		var companion *Fact
		switch f.Type {
		case RuleBox:
			companion = t.boxConfinement(p, f)
		case RuleRow, RuleCol:
			companion = t.lineConfinement(p, f)
		default:
			continue
		}
		if companion == nil {
			continue
		}

		evt, ok := t.claimAgainst(p, f, companion)
		if ok {
			return evt, true, nil
		}
	}
	return nil, false, nil
}

// boxConfinement checks whether every surviving claim of box fact f shares a
// row or a column, returning the companion row/col fact to claim against.
func (t *ValueClaim) boxConfinement(p *Puzzle, f *Fact) *Fact {
	if f.Size() < 2 {
		return nil
	}
	members := f.Claims()
	z := p.claim(members[0]).Z
	sameY, sameX := true, true
	y0, x0 := p.claim(members[0]).Y, p.claim(members[0]).X
	for _, id := range members[1:] {
		c := p.claim(id)
		if c.Y != y0 {
			sameY = false
		}
		if c.X != x0 {
			sameX = false
		}
	}
	switch {
	case sameY:
		return p.RowFact(y0, z)
	case sameX:
		return p.ColFact(x0, z)
	}
	return nil
}

// lineConfinement checks whether every surviving claim of row/col fact f
// shares a box, returning that box fact to claim against.
func (t *ValueClaim) lineConfinement(p *Puzzle, f *Fact) *Fact {
	if f.Size() < 2 {
		return nil
	}
	members := f.Claims()
	first := p.claim(members[0])
	z := first.Z
	box0 := BoxOf(first.X, first.Y, p.Magnitude)
	for _, id := range members[1:] {
		c := p.claim(id)
		if BoxOf(c.X, c.Y, p.Magnitude) != box0 {
			return nil
		}
	}
	return p.BoxFact(box0, z)
}

// claimAgainst falsifies every claim of companion that is not also a member
// of source, the shared digit having been confined to source.
func (t *ValueClaim) claimAgainst(p *Puzzle, source, companion *Fact) (*EventNode, bool) {
	se := NewSolutionEvent(fmt.Sprintf("value_claim: %s fact %d confines its digit to %s fact %d", source.Type, source.ID, companion.Type, companion.ID))
	for _, id := range companion.Claims() {
		if source.Contains(id) {
			continue
		}
		p.claim(id).SetFalse(p, se.Top())
	}
	evt, err := se.Finish()
	if err != nil {
		return nil, false
	}
	return evt, true
}
