// Package parse turns puzzle text into the (magnitude, values) pair
// internal/sudoku/graph.NewPuzzle expects, the concrete half of the
// Parser interface the spec's external interfaces section calls for.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sudoku-graph/internal/sudoku/graph"
	"sudoku-graph/pkg/constants"
)

// Parser turns puzzle text into a magnitude and a row-major value list.
type Parser interface {
	Parse(r io.Reader) (magnitude int, values []int, err error)
}

// TextParser reads a grid of side = magnitude^2 lines, each side symbols
// wide, from the MaxRadix alphabet (0-9A-Z), with '0', '.' or a blank
// treated as an empty cell. Magnitude is inferred from the line count:
// side must be a perfect square of a supported magnitude.
type TextParser struct{}

// NewTextParser returns the default text parser.
func NewTextParser() *TextParser { return &TextParser{} }

// Parse reads every non-blank line up to the inferred side length and
// decodes each line's symbols into a 1-based value, or 0 for empty.
func (TextParser) Parse(r io.Reader) (int, []int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: reading puzzle text: %v", graph.ErrMalformedInput, err)
	}

	side := len(lines)
	magnitude, ok := magnitudeForSide(side)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %d lines is not a supported side length", graph.ErrMalformedInput, side)
	}

	values := make([]int, side*side)
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != side {
			return 0, nil, fmt.Errorf("%w: line %d has %d symbols, want %d", graph.ErrMalformedInput, y+1, len(runes), side)
		}
		for x, r := range runes {
			if r > 255 {
				return 0, nil, fmt.Errorf("%w: line %d col %d: symbol out of range", graph.ErrMalformedInput, y+1, x+1)
			}
			z, ok := graph.ValueOf(byte(r))
			if !ok {
				return 0, nil, fmt.Errorf("%w: line %d col %d: unrecognized symbol %q", graph.ErrMalformedInput, y+1, x+1, r)
			}
			if z == -1 {
				values[y*side+x] = 0
			} else {
				values[y*side+x] = z + 1
			}
		}
	}

	return magnitude, values, nil
}

func magnitudeForSide(side int) (int, bool) {
	for m := constants.MinMagnitude; m <= constants.MaxMagnitude; m++ {
		if constants.SideLength(m) == side {
			return m, true
		}
	}
	return 0, false
}
