package graph

import (
	"fmt"

	"sudoku-graph/pkg/constants"
)

// CellDeath detects the terminal contradiction: some fact's claim set has
// been driven to zero. The emptying itself already happened inside
// Fact.remove, which poisons the puzzle the instant it occurs; CellDeath's
// job is only to surface that event once into the causal tree so a caller
// inspecting the solve's history sees which fact died and why, rather than
// silently stalling.
type CellDeath struct {
	reported bool
}

// NewCellDeath returns a fresh CellDeath technique.
func NewCellDeath() *CellDeath { return &CellDeath{} }

func (t *CellDeath) Name() string { return "cell_death" }
func (t *CellDeath) Tier() string { return constants.TierSimple }

func (t *CellDeath) Digest(p *Puzzle) (*EventNode, bool, error) {
	unsat, fid := p.Unsatisfiable()
	if !unsat || t.reported {
		return nil, false, nil
	}
	t.reported = true
	f := p.fact(fid)
	evt := newEventNode(nil, fmt.Sprintf("cell_death: %s fact %d has no remaining claims", f.Type, f.ID))
	return evt, true, ErrUnsatisfiable
}
