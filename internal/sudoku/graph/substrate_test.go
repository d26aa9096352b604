package graph

import "testing"

func TestCombinationsLexicographicOrder(t *testing.T) {
	got := combinations(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("combo %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCombinationsEdgeCases(t *testing.T) {
	if combinations(3, 0) != nil {
		t.Error("k=0 should return nil")
	}
	if combinations(2, 3) != nil {
		t.Error("k>n should return nil")
	}
}

func TestConnectedComponentsGroupsByAdjacency(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No two cell facts share a claim, so an adjacency predicate that never
	// reports a pair must leave every cell fact in its own component.
	all := p.FactStream()
	var cellFacts []*Fact
	for _, f := range all {
		if f.Type == RuleCell {
			cellFacts = append(cellFacts, f)
		}
	}
	adjacent := func(a, b *Fact) bool {
		return false // no cell fact shares a claim with another cell fact
	}
	components := ConnectedComponents(cellFacts, adjacent)
	if len(components) != len(cellFacts) {
		t.Errorf("expected every cell fact to be its own component, got %d components for %d facts", len(components), len(cellFacts))
	}
}

func TestSharedClaim(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cell := p.CellFact(0, 0)
	row := p.RowFact(0, 0)
	if _, ok := SharedClaim(cell, row); !ok {
		t.Error("cell(0,0) and row(0,z=0) should share claim (0,0,0)")
	}
	col := p.ColFact(3, 3)
	if _, ok := SharedClaim(cell, col); ok {
		t.Error("cell(0,0) and col(3,z=3) should not share any claim")
	}
}
