package graph

import "testing"

func TestOrganFailureCascadesAfterMerge(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Prune cell(0,0) to a single remaining claim via Fact.merge, which
	// deliberately skips validateFinalState, simulating the post-merge
	// state OrganFailure exists to catch.
	survivor, _ := p.ClaimAt(0, 0, 0)
	scratch := newFact(FactID(-1), RuleCell, p.tag, survivor.ID)
	p.CellFact(0, 0).merge(p, scratch)

	of := NewOrganFailure()
	evt, ok, err := of.Digest(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected OrganFailure to validate the collapsed fact")
	}
	if evt.DeepFalse() == 0 {
		t.Error("expected the event to record falsified claims")
	}

	peer, _ := p.ClaimAt(1, 0, 0)
	if !peer.IsFalse() {
		t.Error("the proven claim's digit should be eliminated from the rest of its row")
	}
}

func TestOrganFailureNoOpOnFreshGrid(t *testing.T) {
	zeros := make([]int, 16)
	p, err := NewPuzzle(2, zeros)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	of := NewOrganFailure()
	_, ok, err := of.Digest(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("a fresh grid has no size-1 facts and should give OrganFailure nothing to do")
	}
}
