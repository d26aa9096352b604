// Package check provides grid-level verification independent of the claim/
// fact graph: conflict detection for arbitrary magnitude grids, adapted
// from the teacher's internal/sudoku/dp package, plus an opt-in backtracking
// uniqueness check used only by puzzle authoring, never by the driver.
package check

import "fmt"

// ConflictKind names which structural group a conflict was found in.
type ConflictKind string

const (
	ConflictRow ConflictKind = "row"
	ConflictCol ConflictKind = "col"
	ConflictBox ConflictKind = "box"
)

// Conflict identifies two cells sharing a row, column or box that hold the
// same value.
type Conflict struct {
	Cell1 int
	Cell2 int
	Value int
	Kind  ConflictKind
}

// FindConflicts returns every conflicting cell pair in a row-major grid of
// side = magnitude^2, generalized from the teacher's fixed 9x9 FindConflicts.
func FindConflicts(magnitude int, grid []int) []Conflict {
	side := magnitude * magnitude
	var conflicts []Conflict
	seen := make(map[string]bool)

	record := func(cell1, cell2, val int, kind ConflictKind) {
		if cell1 > cell2 {
			cell1, cell2 = cell2, cell1
		}
		key := fmt.Sprintf("%d-%d-%d", cell1, cell2, val)
		if !seen[key] {
			seen[key] = true
			conflicts = append(conflicts, Conflict{Cell1: cell1, Cell2: cell2, Value: val, Kind: kind})
		}
	}

	// Rows
	for y := 0; y < side; y++ {
		positions := make(map[int][]int)
		for x := 0; x < side; x++ {
			v := grid[y*side+x]
			if v == 0 {
				continue
			}
			positions[v] = append(positions[v], x)
		}
		for v, xs := range positions {
			for i := 0; i < len(xs); i++ {
				for j := i + 1; j < len(xs); j++ {
					record(y*side+xs[i], y*side+xs[j], v, ConflictRow)
				}
			}
		}
	}

	// Columns
	for x := 0; x < side; x++ {
		positions := make(map[int][]int)
		for y := 0; y < side; y++ {
			v := grid[y*side+x]
			if v == 0 {
				continue
			}
			positions[v] = append(positions[v], y)
		}
		for v, ys := range positions {
			for i := 0; i < len(ys); i++ {
				for j := i + 1; j < len(ys); j++ {
					record(ys[i]*side+x, ys[j]*side+x, v, ConflictCol)
				}
			}
		}
	}

	// Boxes
	for box := 0; box < side; box++ {
		boxRow, boxCol := (box/magnitude)*magnitude, (box%magnitude)*magnitude
		positions := make(map[int][]int)
		for r := boxRow; r < boxRow+magnitude; r++ {
			for c := boxCol; c < boxCol+magnitude; c++ {
				v := grid[r*side+c]
				if v == 0 {
					continue
				}
				positions[v] = append(positions[v], r*side+c)
			}
		}
		for v, cells := range positions {
			for i := 0; i < len(cells); i++ {
				for j := i + 1; j < len(cells); j++ {
					record(cells[i], cells[j], v, ConflictBox)
				}
			}
		}
	}

	return conflicts
}

// IsValid reports whether the grid has no row/column/box conflicts. A grid
// with empty cells can still be valid; this checks consistency, not
// completeness.
func IsValid(magnitude int, grid []int) bool {
	return len(FindConflicts(magnitude, grid)) == 0
}

// CountSolutions counts solutions of grid by backtracking, stopping once
// maxCount is reached. This is an opt-in side collaborator for puzzle
// authoring's uniqueness check and is never called from the driver or any
// technique, preserving the Non-goal that search is not the main solving
// method.
func CountSolutions(magnitude int, grid []int, maxCount int) int {
	side := magnitude * magnitude
	board := make([]int, len(grid))
	copy(board, grid)
	count := 0
	countSolutions(magnitude, side, board, &count, maxCount)
	return count
}

func countSolutions(magnitude, side int, board []int, count *int, maxCount int) {
	if *count >= maxCount {
		return
	}
	idx := -1
	for i, v := range board {
		if v == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		*count++
		return
	}
	row, col := idx/side, idx%side
	for v := 1; v <= side; v++ {
		if placementValid(magnitude, side, board, row, col, v) {
			board[idx] = v
			countSolutions(magnitude, side, board, count, maxCount)
			board[idx] = 0
			if *count >= maxCount {
				return
			}
		}
	}
}

func placementValid(magnitude, side int, board []int, row, col, v int) bool {
	for c := 0; c < side; c++ {
		if board[row*side+c] == v {
			return false
		}
	}
	for r := 0; r < side; r++ {
		if board[r*side+col] == v {
			return false
		}
	}
	boxRow, boxCol := (row/magnitude)*magnitude, (col/magnitude)*magnitude
	for r := boxRow; r < boxRow+magnitude; r++ {
		for c := boxCol; c < boxCol+magnitude; c++ {
			if board[r*side+c] == v {
				return false
			}
		}
	}
	return true
}

// HasUniqueSolution reports whether grid has exactly one solution.
func HasUniqueSolution(magnitude int, grid []int) bool {
	return CountSolutions(magnitude, grid, 2) == 1
}
