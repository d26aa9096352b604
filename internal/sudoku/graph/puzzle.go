package graph

import (
	"fmt"
	"sync/atomic"
)

var puzzleTagSeq int64

func nextPuzzleTag() int {
	return int(atomic.AddInt64(&puzzleTagSeq, 1))
}

// Puzzle owns every claim and every fact for one solve. Cross-references
// between claims and facts are indices into these owner tables — there are
// no raw back-pointers or ownership cycles.
type Puzzle struct {
	Magnitude int
	Side      int // m^2

	tag          int
	claims       []*Claim
	facts        []*Fact
	coordToClaim map[[3]int]ClaimID

	// Direct lookup tables from a fact's structural key to its FactID, so
	// ValueClaim can find a claim's companion row/col/box fact without a
	// linear scan.
	cellFact [][]FactID // [x][y]
	rowFact  [][]FactID // [y][z]
	colFact  [][]FactID // [x][z]
	boxFact  [][]FactID // [box][z]

	unsat        bool
	poisonedFact FactID
}

func make2D(n int) [][]FactID {
	out := make([][]FactID, n)
	for i := range out {
		out[i] = make([]FactID, n)
	}
	return out
}

// NewPuzzle constructs a puzzle from a magnitude and a row-major, 0-indexed
// value list of length side^2 (0 = empty, v in [1, side] = a given). Fails
// with ErrMalformedInput when the length or contents are inconsistent.
func NewPuzzle(magnitude int, values []int) (*Puzzle, error) {
	if !ValidMagnitude(magnitude) {
		return nil, fmt.Errorf("%w: magnitude %d out of range", ErrMalformedInput, magnitude)
	}
	side := magnitude * magnitude
	if len(values) != side*side {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedInput, side*side, len(values))
	}
	for i, v := range values {
		if v < 0 || v > side {
			return nil, fmt.Errorf("%w: value %d at position %d out of [0,%d]", ErrMalformedInput, v, i, side)
		}
	}

	p := &Puzzle{
		Magnitude:    magnitude,
		Side:         side,
		tag:          nextPuzzleTag(),
		coordToClaim: make(map[[3]int]ClaimID, side*side*side),
	}

	p.claims = make([]*Claim, 0, side*side*side)
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				id := ClaimID(len(p.claims))
				c := newClaim(id, x, y, z, p.tag)
				p.claims = append(p.claims, c)
				p.coordToClaim[[3]int{x, y, z}] = id
			}
		}
	}

	p.facts = make([]*Fact, 0, 4*side*side)
	p.cellFact = make2D(side)
	p.rowFact = make2D(side)
	p.colFact = make2D(side)
	p.boxFact = make2D(side)

	// Cell facts: one per (x,y), containing every z.
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			p.cellFact[x][y] = p.addFact(RuleCell, p.claimsWhere(func(c *Claim) bool { return c.X == x && c.Y == y }))
		}
	}
	// Row facts: one per (y,z), containing every x.
	for y := 0; y < side; y++ {
		for z := 0; z < side; z++ {
			p.rowFact[y][z] = p.addFact(RuleRow, p.claimsWhere(func(c *Claim) bool { return c.Y == y && c.Z == z }))
		}
	}
	// Column facts: one per (x,z), containing every y.
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			p.colFact[x][z] = p.addFact(RuleCol, p.claimsWhere(func(c *Claim) bool { return c.X == x && c.Z == z }))
		}
	}
	// Box facts: one per (box,z), containing the box's m cells.
	for box := 0; box < side; box++ {
		for z := 0; z < side; z++ {
			p.boxFact[box][z] = p.addFact(RuleBox, p.claimsWhere(func(c *Claim) bool { return BoxOf(c.X, c.Y, magnitude) == box && c.Z == z }))
		}
	}

	// Init facts: one per given, containing the single matching claim.
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			v := values[y*side+x]
			if v == 0 {
				continue
			}
			z := v - 1
			claimID := p.coordToClaim[[3]int{x, y, z}]
			p.addFact(RuleInit, []ClaimID{claimID})
		}
	}

	return p, nil
}

// claimsWhere is used only during construction, where it is cheap enough to
// scan linearly; the hot path never calls it again afterward.
func (p *Puzzle) claimsWhere(pred func(c *Claim) bool) []ClaimID {
	var out []ClaimID
	for _, c := range p.claims {
		if pred(c) {
			out = append(out, c.ID)
		}
	}
	return out
}

func (p *Puzzle) addFact(t RuleType, members []ClaimID) FactID {
	id := FactID(len(p.facts))
	f := newFact(id, t, p.tag, members...)
	p.facts = append(p.facts, f)
	for _, cid := range members {
		p.claims[cid].facts[id] = struct{}{}
	}
	return id
}

func (p *Puzzle) claim(id ClaimID) *Claim { return p.claims[id] }
func (p *Puzzle) fact(id FactID) *Fact    { return p.facts[id] }

// RowFact, ColFact and BoxFact return the structural fact keyed by the given
// coordinates, for techniques that need a claim's companion facts directly
// rather than by neighbor-set scan.
func (p *Puzzle) RowFact(y, z int) *Fact { return p.facts[p.rowFact[y][z]] }
func (p *Puzzle) ColFact(x, z int) *Fact { return p.facts[p.colFact[x][z]] }
func (p *Puzzle) BoxFact(box, z int) *Fact { return p.facts[p.boxFact[box][z]] }
func (p *Puzzle) CellFact(x, y int) *Fact { return p.facts[p.cellFact[x][y]] }

func (p *Puzzle) poison(f FactID) {
	if !p.unsat {
		p.unsat = true
		p.poisonedFact = f
	}
}

// Unsatisfiable reports whether any fact has ever dropped to size zero, and
// if so, which fact.
func (p *Puzzle) Unsatisfiable() (bool, FactID) {
	return p.unsat, p.poisonedFact
}

// ClaimAt looks up the claim for (x,y,z) in O(1).
func (p *Puzzle) ClaimAt(x, y, z int) (*Claim, bool) {
	id, ok := p.coordToClaim[[3]int{x, y, z}]
	if !ok {
		return nil, false
	}
	return p.claims[id], true
}

// ClaimByID returns the claim for an id obtained from a prior stream/scan.
func (p *Puzzle) ClaimByID(id ClaimID) *Claim { return p.claims[id] }

// FactByID returns the fact for an id obtained from a prior stream/scan.
func (p *Puzzle) FactByID(id FactID) *Fact { return p.facts[id] }

// ClaimStream snapshots every claim in id order. Per the spec's stream-
// with-mutation-hazard note, callers must collect candidate work from this
// snapshot before mutating the graph.
func (p *Puzzle) ClaimStream() []*Claim {
	out := make([]*Claim, len(p.claims))
	copy(out, p.claims)
	return out
}

// FactStream snapshots every fact in id order, same caveat as ClaimStream.
func (p *Puzzle) FactStream() []*Fact {
	out := make([]*Fact, len(p.facts))
	copy(out, p.facts)
	return out
}

// IsSolved reports whether every fact has collapsed to size one.
func (p *Puzzle) IsSolved() bool {
	for _, f := range p.facts {
		if f.Size() != 1 {
			return false
		}
	}
	return true
}

// Tag identifies the owning puzzle, for MisuseCrossPuzzle checks by callers
// holding entities from more than one puzzle.
func (p *Puzzle) Tag() int { return p.tag }

// SameOrigin reports whether fact f belongs to this puzzle.
func (p *Puzzle) SameOrigin(f *Fact) bool { return f.puzzleTag == p.tag }

// Value returns the proven 0-based digit at (x,y), or -1 if not yet solved.
func (p *Puzzle) Value(x, y int) int {
	for z := 0; z < p.Side; z++ {
		if c, ok := p.ClaimAt(x, y, z); ok && c.IsTrue(p) {
			return z
		}
	}
	return -1
}

// String renders the puzzle per the rendering contract: side rows of side
// columns, '|'-enclosed cells, base-36 symbols, space for unknown.
func (p *Puzzle) String() string {
	buf := make([]byte, 0, p.Side*(p.Side*2+1)+p.Side)
	for y := 0; y < p.Side; y++ {
		for x := 0; x < p.Side; x++ {
			buf = append(buf, '|')
			buf = append(buf, SymbolOf(p.Value(x, y)))
		}
		buf = append(buf, '|', '\n')
	}
	return string(buf)
}
