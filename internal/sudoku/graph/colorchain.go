package graph

import "fmt"

// ColorChain exploits facts of size two: a fact with exactly two live
// claims is a strong link — if one member is false the other must be true,
// and vice versa. Chaining strong links through shared claims forms a
// connected component that admits a two-coloring, where the claims of one
// color are all true or all false together, and exactly opposite to the
// claims of the other color. Three
// contradictions fall out of that coloring:
//
//   - intra-chain: two claims of the SAME color share a fact (at most one
//     of them could ever be true together) — that color is globally wrong,
//     so every claim holding it is false.
//   - inter-chain: a claim outside the chain shares a fact with one claim
//     of each color — whichever color turns out true, the outside claim is
//     eliminated either way.
//   - bridge-collapse: the observing claim in the inter-chain case is
//     itself a member of a DIFFERENT chain rather than a free claim; the
//     elimination rule is identical, only the provenance of the observer
//     differs, so both cases share one implementation distinguished only
//     in the event's label.
type ColorChain struct{}

// NewColorChain returns a fresh ColorChain technique.
func NewColorChain() *ColorChain { return &ColorChain{} }

func (t *ColorChain) Name() string { return "color_chain" }
func (t *ColorChain) Tier() string { return "hard" }

func (t *ColorChain) Digest(p *Puzzle) (*EventNode, bool, error) {
	edges := FactsOfSize(p, 2)
	if len(edges) == 0 {
		return nil, false, nil
	}
	components := ConnectedComponents(edges, func(a, b *Fact) bool {
		_, shared := SharedClaim(a, b)
		return shared
	})

	colorings := make([]map[ClaimID]int, len(components))
	for i, group := range components {
		colorings[i] = colorComponent(group)
	}

	for _, colors := range colorings {
		if evt, ok := intraChainContradiction(p, colors); ok {
			return evt, true, nil
		}
	}
	for i, colors := range colorings {
		if evt, ok := crossChainElimination(p, colors, colorings, i); ok {
			return evt, true, nil
		}
	}
	return nil, false, nil
}

// colorComponent assigns alternating colors 0/1 via BFS over a connected
// group of strong-link (size-2) facts, starting from the lowest ClaimID for
// determinism.
func colorComponent(facts []*Fact) map[ClaimID]int {
	adjacency := make(map[ClaimID][]ClaimID)
	start, started := ClaimID(0), false
	for _, f := range facts {
		claims := f.Claims()
		if len(claims) != 2 {
			continue
		}
		a, b := claims[0], claims[1]
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
		if !started || a < start {
			start, started = a, true
		}
		if b < start {
			start = b
		}
	}

	colors := make(map[ClaimID]int)
	if !started {
		return colors
	}
	colors[start] = 0
	queue := []ClaimID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adjacency[cur] {
			if _, seen := colors[nb]; !seen {
				colors[nb] = 1 - colors[cur]
				queue = append(queue, nb)
			}
		}
	}
	return colors
}

func shareLiveFact(p *Puzzle, a, b ClaimID) bool {
	ca, cb := p.claim(a), p.claim(b)
	for fid := range ca.facts {
		if cb.HasFact(fid) {
			return true
		}
	}
	return false
}

// intraChainContradiction falsifies an entire color when two of its own
// members still share a fact, which would require both to be true at once.
func intraChainContradiction(p *Puzzle, colors map[ClaimID]int) (*EventNode, bool) {
	for color := 0; color <= 1; color++ {
		var members []ClaimID
		for c, col := range colors {
			if col == color {
				members = append(members, c)
			}
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if !shareLiveFact(p, members[i], members[j]) {
					continue
				}
				se := NewSolutionEvent(fmt.Sprintf("color_chain: color %d sees itself, falsifying the whole color", color))
				for _, c := range members {
					p.claim(c).SetFalse(p, se.Top())
				}
				if evt, err := se.Finish(); err == nil {
					return evt, true
				}
			}
		}
	}
	return nil, false
}

// crossChainElimination falsifies every claim outside this component that
// shares a fact with a color-0 member and a fact with a color-1 member,
// whether that claim is free (inter-chain) or belongs to a different
// component entirely (bridge-collapse). Each observer is recorded under its
// own labeled child of one event.
func crossChainElimination(p *Puzzle, colors map[ClaimID]int, all []map[ClaimID]int, selfIdx int) (*EventNode, bool) {
	var zero, one []ClaimID
	for c, col := range colors {
		if col == 0 {
			zero = append(zero, c)
		} else {
			one = append(one, c)
		}
	}

	candidates := make(map[ClaimID]bool)
	for _, c := range zero {
		for fid := range p.claim(c).facts {
			for _, other := range p.fact(fid).Claims() {
				if _, inChain := colors[other]; !inChain {
					candidates[other] = true
				}
			}
		}
	}

	se := NewSolutionEvent("color_chain: observers see both colors")
	for x := range candidates {
		seesZero, seesOne := false, false
		for _, c := range zero {
			if shareLiveFact(p, x, c) {
				seesZero = true
				break
			}
		}
		for _, c := range one {
			if shareLiveFact(p, x, c) {
				seesOne = true
				break
			}
		}
		if !seesZero || !seesOne {
			continue
		}

		label := "color_chain: inter-chain observer sees both colors"
		for j, other := range all {
			if j == selfIdx {
				continue
			}
			if _, ok := other[x]; ok {
				label = "color_chain: bridge-collapse observer sees both colors"
				break
			}
		}

		se.Push(label)
		p.claim(x).SetFalse(p, se.Top())
		se.Pop()
	}
	if evt, err := se.Finish(); err == nil {
		return evt, true
	}
	return nil, false
}
