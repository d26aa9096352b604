package graph

import "fmt"

// Sledgehammer is the generalized subset-elimination technique: naked
// pairs/triples, hidden equivalents of fish patterns, X-wing and swordfish
// all fall out of the same two counting arguments, parameterized only by
// which family of facts plays "source."
//
// A family of facts is internally claim-disjoint when no two of its facts
// ever share a claim — true of same-(x,y) cell facts, and true of
// same-digit row facts or same-digit column facts. Given k disjoint source
// facts from such a family, each must supply its own true claim, so at
// least k distinct claims among their union are "reserved." When those
// reserved claims project onto only k distinct secondary coordinates
// (digit, for cell sources; column, for row sources; row, for column
// sources), the sources use up those k values. For cell sources that
// holds when the k cells are mutual peers, and the k digits are then
// eliminated from every cell that sees all k of them; for row (column)
// sources the digit is eliminated from the k columns (rows) outside the
// source lines. k=2 on cells recovers the
// naked pair; k=2 on same-digit rows recovers X-wing; larger k recovers
// triples, quads and swordfish/jellyfish.
type Sledgehammer struct {
	minK, maxK int
}

// NewSledgehammer returns a Sledgehammer bounded to subset sizes [minK,maxK].
func NewSledgehammer(minK, maxK int) *Sledgehammer {
	return &Sledgehammer{minK: minK, maxK: maxK}
}

func (t *Sledgehammer) Name() string { return "sledgehammer" }
func (t *Sledgehammer) Tier() string { return tierForK(t.maxK) }

func tierForK(k int) string {
	if k <= 2 {
		return "medium"
	}
	return "hard"
}

func (t *Sledgehammer) Digest(p *Puzzle) (*EventNode, bool, error) {
	for k := t.minK; k <= t.maxK; k++ {
		if evt, ok := sledgehammerCells(p, k); ok {
			return evt, true, nil
		}
		if evt, ok := sledgehammerFish(p, k, RuleRow); ok {
			return evt, true, nil
		}
		if evt, ok := sledgehammerFish(p, k, RuleCol); ok {
			return evt, true, nil
		}
	}
	return nil, false, nil
}

// sledgehammerCells tries the naked-subset pattern over k cell facts.
func sledgehammerCells(p *Puzzle, k int) (*EventNode, bool) {
	side := p.Side
	var pool []*Fact
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			f := p.CellFact(x, y)
			if f.Size() >= 2 && f.Size() <= k {
				pool = append(pool, f)
			}
		}
	}
	if len(pool) < k {
		return nil, false
	}

	for _, combo := range combinations(len(pool), k) {
		sources := make([]*Fact, k)
		cells := make([][2]int, k)
		digits := make(map[int]bool)
		for i, idx := range combo {
			sources[i] = pool[idx]
			claims := sources[i].Claims()
			cells[i] = [2]int{p.claim(claims[0]).X, p.claim(claims[0]).Y}
			for _, cid := range claims {
				digits[p.claim(cid).Z] = true
			}
		}
		if len(digits) != k {
			continue
		}
		// The k cells must all see each other, so they take k distinct
		// digits and use up the whole digit set.
		clique := true
		for i := 0; i < k && clique; i++ {
			for j := i + 1; j < k; j++ {
				if !arePeers(cells[i][0], cells[i][1], cells[j][0], cells[j][1], p.Magnitude) {
					clique = false
					break
				}
			}
		}
		if !clique {
			continue
		}

		peers := commonPeers(cells, side, p.Magnitude)
		se := NewSolutionEvent(fmt.Sprintf("sledgehammer: %d cells confine %d digits", k, len(digits)))
		for _, peer := range peers {
			for z := range digits {
				if c, ok := p.ClaimAt(peer[0], peer[1], z); ok && !c.IsFalse() {
					c.SetFalse(p, se.Top())
				}
			}
		}
		evt, err := se.Finish()
		if err == nil {
			return evt, true
		}
	}
	return nil, false
}

// sledgehammerFish tries the fish pattern over k same-digit line facts of
// the given orientation (RuleRow sources eliminate down columns, RuleCol
// sources eliminate across rows).
func sledgehammerFish(p *Puzzle, k int, orientation RuleType) (*EventNode, bool) {
	side := p.Side
	for z := 0; z < side; z++ {
		var pool []*Fact
		var lineIdx []int // the row (or col) index each pool entry was built from
		for i := 0; i < side; i++ {
			var f *Fact
			if orientation == RuleRow {
				f = p.RowFact(i, z)
			} else {
				f = p.ColFact(i, z)
			}
			if f.Size() >= 2 && f.Size() <= k {
				pool = append(pool, f)
				lineIdx = append(lineIdx, i)
			}
		}
		if len(pool) < k {
			continue
		}

		for _, combo := range combinations(len(pool), k) {
			sourceLines := make(map[int]bool, k) // source row indices (RuleRow) or col indices (RuleCol)
			cross := make(map[int]bool)          // column index, for row sources; row index, for col sources
			for _, idx := range combo {
				sourceLines[lineIdx[idx]] = true
				f := pool[idx]
				for _, cid := range f.Claims() {
					c := p.claim(cid)
					if orientation == RuleRow {
						cross[c.X] = true
					} else {
						cross[c.Y] = true
					}
				}
			}
			if len(cross) != k {
				continue
			}

			se := NewSolutionEvent(fmt.Sprintf("sledgehammer: %d-fish on digit %d", k, z))
			for idx := range cross {
				var companion *Fact
				if orientation == RuleRow {
					companion = p.ColFact(idx, z)
				} else {
					companion = p.RowFact(idx, z)
				}
				for _, cid := range companion.Claims() {
					c := p.claim(cid)
					// Skip claims that belong to one of the source lines: the
					// pattern's own corner cells, which must stay live.
					var onSourceLine bool
					if orientation == RuleRow {
						onSourceLine = sourceLines[c.Y]
					} else {
						onSourceLine = sourceLines[c.X]
					}
					if onSourceLine {
						continue
					}
					c.SetFalse(p, se.Top())
				}
			}
			evt, err := se.Finish()
			if err == nil {
				return evt, true
			}
		}
	}
	return nil, false
}

// commonPeers returns every cell that shares a row, column or box with
// every cell in cells, excluding the cells themselves.
func commonPeers(cells [][2]int, side, magnitude int) [][2]int {
	var out [][2]int
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			isMember := false
			seesAll := true
			for _, cell := range cells {
				if cell[0] == x && cell[1] == y {
					isMember = true
					break
				}
				if !arePeers(x, y, cell[0], cell[1], magnitude) {
					seesAll = false
					break
				}
			}
			if !isMember && seesAll {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func arePeers(x1, y1, x2, y2, magnitude int) bool {
	return x1 == x2 || y1 == y2 || BoxOf(x1, y1, magnitude) == BoxOf(x2, y2, magnitude)
}

// combinations returns every k-subset of {0,...,n-1}, in lexicographic
// index order, matching the spec's requirement for deterministic ordering.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var result [][]int
	combo := make([]int, k)
	var rec func(start, idx int)
	rec = func(start, idx int) {
		if idx == k {
			c := make([]int, k)
			copy(c, combo)
			result = append(result, c)
			return
		}
		for i := start; i <= n-(k-idx); i++ {
			combo[idx] = i
			rec(i+1, idx+1)
		}
	}
	rec(0, 0)
	return result
}
