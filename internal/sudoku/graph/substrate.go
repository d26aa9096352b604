package graph

// This file holds generic bipartite-graph substrate operations shared by
// more than one technique: neighbor discovery across the claim/fact
// boundary and connected-component grouping over a caller-supplied adjacency
// predicate. Individual techniques (ColorChain in particular) build their
// own semantics on top of these primitives rather than duplicating
// traversal code.

// FactsOfSize returns every currently-live fact with exactly size claims,
// snapshot order by FactID.
func FactsOfSize(p *Puzzle, size int) []*Fact {
	var out []*Fact
	for _, f := range p.FactStream() {
		if f.Size() == size {
			out = append(out, f)
		}
	}
	return out
}

// SharedClaim returns a claim common to both facts, if any. Two facts with a
// shared claim are "adjacent" in the bipartite graph one hop out (fact ->
// claim -> fact).
func SharedClaim(a, b *Fact) (ClaimID, bool) {
	for c := range a.claims {
		if b.Contains(c) {
			return c, true
		}
	}
	return 0, false
}

// ConnectedComponents partitions facts into groups using BFS over the
// caller-supplied adjacency predicate. Facts for which adjacent never
// returns true with any other fact form singleton components.
func ConnectedComponents(facts []*Fact, adjacent func(a, b *Fact) bool) [][]*Fact {
	visited := make(map[FactID]bool, len(facts))
	var components [][]*Fact

	for _, seed := range facts {
		if visited[seed.ID] {
			continue
		}
		var component []*Fact
		queue := []*Fact{seed}
		visited[seed.ID] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)
			for _, other := range facts {
				if visited[other.ID] || other.ID == cur.ID {
					continue
				}
				if adjacent(cur, other) {
					visited[other.ID] = true
					queue = append(queue, other)
				}
			}
		}
		components = append(components, component)
	}
	return components
}
