// Package core holds the domain model types shared by the HTTP and CLI
// collaborators: JSON projections of the graph engine's puzzle and event
// tree, kept separate from internal/sudoku/graph so the wire format can
// evolve without touching the solver itself.
package core

// Grid is a flattened, row-major list of values (0 = empty, 1..side = a
// digit) for a puzzle of the given magnitude. Side = magnitude^2.
type Grid struct {
	Magnitude int   `json:"magnitude"`
	Values    []int `json:"values"`
}

// EventStep is the JSON projection of one graph.EventNode: the technique
// label, how many claims it newly falsified, and its nested sub-events.
// This is the "offered as JSON instead of indented text" rendering of the
// causal event tree described for the HTTP collaborator.
type EventStep struct {
	Label     string      `json:"label"`
	Falsified int         `json:"falsified"`
	DeepFalse int         `json:"deep_false"`
	Children  []EventStep `json:"children,omitempty"`
}

// SolveResult is the response body for a solve request: the final grid,
// the driver's terminal status, how many pipeline steps ran, and the full
// event forest for debugging.
type SolveResult struct {
	Status    string      `json:"status"`
	Rendered  string      `json:"rendered"`
	Grid      Grid        `json:"grid"`
	StepCount int         `json:"step_count"`
	Steps     []EventStep `json:"steps"`
}

// BankedPuzzle is one puzzle drawn from the puzzle bank, keyed by a stable
// UUID rather than the teacher's ad hoc fnv/sha256 seed hashing.
type BankedPuzzle struct {
	ID        string `json:"id"`
	Magnitude int    `json:"magnitude"`
	Givens    []int  `json:"givens"`
}
