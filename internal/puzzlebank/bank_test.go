package puzzlebank

import "testing"

func TestAddAndRandomRoundTrip(t *testing.T) {
	b := New()
	givens := make([]int, 16)
	givens[0] = 1
	if err := b.Add(2, givens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Count(2) != 1 {
		t.Fatalf("expected 1 banked puzzle, got %d", b.Count(2))
	}
	p, ok := b.Random(2)
	if !ok {
		t.Fatal("expected a random puzzle to be found")
	}
	if p.ID == "" {
		t.Error("expected a non-empty UUID")
	}
	if p.Magnitude != 2 {
		t.Errorf("expected magnitude 2, got %d", p.Magnitude)
	}
}

func TestAddRejectsWrongGivensLength(t *testing.T) {
	b := New()
	if err := b.Add(2, make([]int, 10)); err == nil {
		t.Fatal("expected an error for a givens list of the wrong length")
	}
}

func TestRandomOnEmptyMagnitude(t *testing.T) {
	b := New()
	if _, ok := b.Random(3); ok {
		t.Error("expected no puzzle for an unbanked magnitude")
	}
}

func TestByIDFindsAcrossMagnitudes(t *testing.T) {
	b := New()
	_ = b.Add(2, make([]int, 16))
	_ = b.Add(3, make([]int, 81))

	p2, _ := b.Random(2)
	found, ok := b.ByID(p2.ID)
	if !ok {
		t.Fatal("expected ByID to find the puzzle")
	}
	if found.Magnitude != 2 {
		t.Errorf("expected magnitude 2, got %d", found.Magnitude)
	}
}

func TestAuthorAndAddRejectsNonUniquePuzzle(t *testing.T) {
	b := New()
	// A blank grid has many solutions, not a unique one.
	if err := b.AuthorAndAdd(2, make([]int, 16)); err == nil {
		t.Fatal("expected an error for a puzzle without a unique solution")
	}
}
