package graph

// ClaimID indexes into Puzzle's claim table.
type ClaimID int

// FactID indexes into Puzzle's fact table.
type FactID int

// Claim is the graph vertex "cell (X,Y) holds symbol Z". Its identity is
// immutable; its neighbor set of facts shrinks monotonically as the solve
// progresses.
type Claim struct {
	ID ClaimID
	X  int
	Y  int
	Z  int

	puzzleTag int // identifies the owning Puzzle, for MisuseCrossPuzzle checks
	facts     map[FactID]struct{}
}

func newClaim(id ClaimID, x, y, z, puzzleTag int) *Claim {
	return &Claim{ID: id, X: x, Y: y, Z: z, puzzleTag: puzzleTag, facts: make(map[FactID]struct{}, 4)}
}

// Neighbors returns a read-only snapshot of the facts this claim currently
// belongs to.
func (c *Claim) Neighbors() []FactID {
	out := make([]FactID, 0, len(c.facts))
	for id := range c.facts {
		out = append(out, id)
	}
	return out
}

// HasFact reports whether this claim currently belongs to fact id.
func (c *Claim) HasFact(id FactID) bool {
	_, ok := c.facts[id]
	return ok
}

// IsFalse reports whether this claim has been eliminated (no neighbor facts
// contain it any longer).
func (c *Claim) IsFalse() bool {
	return len(c.facts) == 0
}

// IsTrue reports whether any neighbor fact has collapsed to size one,
// meaning this claim is the proven value.
func (c *Claim) IsTrue(p *Puzzle) bool {
	for id := range c.facts {
		if p.fact(id).Size() == 1 {
			return true
		}
	}
	return false
}

// SetFalse removes this claim from every fact that currently contains it.
// Each removal is symmetric (Fact.remove also unlinks the claim side) and
// may itself cascade into further falsifications via Fact.validateFinalState.
// Returns true iff this call produced any change; a claim that is already
// false is a no-op, which is what gives the causal event tree its ancestor
// de-duplication for free: a claim falsified by an ancestor event can never
// be re-recorded by a descendant, since by then SetFalse has nothing to do.
func (c *Claim) SetFalse(p *Puzzle, event *EventNode) bool {
	if c.IsFalse() {
		return false
	}
	// Snapshot before mutating: removing from fact f also deletes f from
	// c.facts, so iterating c.facts directly while removing is unsafe.
	neighbors := c.Neighbors()
	changed := false
	for _, fid := range neighbors {
		if p.fact(fid).remove(p, c.ID, event) {
			changed = true
		}
	}
	if changed {
		event.recordFalsified(c.ID)
	}
	return changed
}
