// Package puzzlebank stores a small set of pre-authored puzzles per
// magnitude, adapted from the teacher's internal/puzzles.Loader: same
// singleton-global shape and RWMutex-guarded reads, generalized from a
// fixed 81-cell grid to any supported magnitude, and keyed by a stable
// google/uuid instead of the teacher's ad hoc fnv/sha256 seed hashing.
package puzzlebank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/google/uuid"

	"sudoku-graph/internal/core"
	"sudoku-graph/internal/sudoku/check"
	"sudoku-graph/pkg/constants"
)

// entry is the on-disk shape: a magnitude and a row-major givens list with
// 0 for empty cells. IDs are assigned at load time, not stored, so the
// bank file stays portable across environments.
type entry struct {
	Magnitude int   `json:"magnitude"`
	Givens    []int `json:"givens"`
}

// file is the top-level JSON structure of a bank file.
type file struct {
	Puzzles []entry `json:"puzzles"`
}

// Bank holds pre-authored puzzles grouped by magnitude.
type Bank struct {
	mu      sync.RWMutex
	byMagnitude map[int][]core.BankedPuzzle
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{byMagnitude: make(map[int][]core.BankedPuzzle)}
}

// Load reads a bank file from path and returns a populated Bank. A
// malformed entry (wrong givens length for its magnitude) is rejected.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlebank: reading %s: %w", path, err)
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("puzzlebank: parsing %s: %w", path, err)
	}

	b := New()
	for _, e := range f.Puzzles {
		if err := b.Add(e.Magnitude, e.Givens); err != nil {
			return nil, fmt.Errorf("puzzlebank: %s: %w", path, err)
		}
	}
	return b, nil
}

// Add stores a puzzle under its magnitude with a freshly minted UUID.
// Givens must be consistency-checked by the caller; Add only validates the
// length matches the magnitude's side^2.
func (b *Bank) Add(magnitude int, givens []int) error {
	side := constants.SideLength(magnitude)
	if len(givens) != side*side {
		return fmt.Errorf("expected %d givens for magnitude %d, got %d", side*side, magnitude, len(givens))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byMagnitude[magnitude] = append(b.byMagnitude[magnitude], core.BankedPuzzle{
		ID:        uuid.NewString(),
		Magnitude: magnitude,
		Givens:    givens,
	})
	return nil
}

// Count returns how many puzzles are banked for magnitude.
func (b *Bank) Count(magnitude int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byMagnitude[magnitude])
}

// Random returns a uniformly random banked puzzle for magnitude, or false
// if none are banked.
func (b *Bank) Random(magnitude int) (core.BankedPuzzle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	puzzles := b.byMagnitude[magnitude]
	if len(puzzles) == 0 {
		return core.BankedPuzzle{}, false
	}
	return puzzles[rand.Intn(len(puzzles))], true
}

// ByID returns the banked puzzle with the given id, across all magnitudes.
func (b *Bank) ByID(id string) (core.BankedPuzzle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, puzzles := range b.byMagnitude {
		for _, p := range puzzles {
			if p.ID == id {
				return p, true
			}
		}
	}
	return core.BankedPuzzle{}, false
}

var (
	global     *Bank
	globalOnce sync.Once
)

// LoadGlobal populates the package-level singleton bank, mirroring the
// teacher's puzzles.LoadGlobal.
func LoadGlobal(path string) error {
	var err error
	globalOnce.Do(func() {
		global, err = Load(path)
	})
	return err
}

// Global returns the singleton bank, or nil if LoadGlobal was never called
// or failed.
func Global() *Bank { return global }

// SetGlobal installs b as the singleton bank, for test setup.
func SetGlobal(b *Bank) { global = b }

// AuthorAndAdd validates a candidate puzzle has a unique solution before
// banking it. This is the only caller of check.CountSolutions in this
// package: banking is an offline authoring step, never on the driver's
// critical path.
func (b *Bank) AuthorAndAdd(magnitude int, givens []int) error {
	if !check.HasUniqueSolution(magnitude, givens) {
		return fmt.Errorf("puzzlebank: candidate puzzle does not have a unique solution")
	}
	return b.Add(magnitude, givens)
}
