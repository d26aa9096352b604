package graph

import "testing"

func TestInitializerForcesGiven(t *testing.T) {
	values := make([]int, 16)
	values[0] = 1 // cell (0,0) given digit 1 (z=0)
	p, err := NewPuzzle(2, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	init := NewInitializer()
	evt, ok, err := init.Digest(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the initializer to fire on a given")
	}
	if evt.DeepFalse() == 0 {
		t.Error("expected the event to record falsified claims")
	}

	other, _ := p.ClaimAt(1, 0, 0)
	if !other.IsFalse() {
		t.Error("the given's digit should be eliminated from the rest of its row")
	}

	_, ok, err = init.Digest(p)
	if err != nil {
		t.Fatalf("unexpected error on second digest: %v", err)
	}
	if ok {
		t.Error("the initializer should not re-process an already-forced given")
	}
}

func TestInitializerNoOpWithoutGivens(t *testing.T) {
	values := make([]int, 16)
	p, err := NewPuzzle(2, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	init := NewInitializer()
	_, ok, err := init.Digest(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("a grid with no givens should give the initializer nothing to do")
	}
}
