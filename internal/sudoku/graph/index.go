// Package graph implements the bipartite claim/fact constraint graph at the
// core of the solver: claims "(x,y) holds z", facts "exactly one of these
// claims is true", the technique pipeline driver, and the causal event tree
// that records every inference.
package graph

import "sudoku-graph/pkg/constants"

// Index is a bounded ordinal in [0, sideLength). Coordinates x, y and z are
// all indices: x is column, y is row, z is the 0-based symbol.
type Index = int

// LinearID computes the dense id of a claim, per the spec's linearization:
// id(x,y,z) = (x*S + y)*S + z, where S is the side length.
func LinearID(x, y, z, side int) int {
	return (x*side+y)*side + z
}

// FromLinearID inverts LinearID.
func FromLinearID(id, side int) (x, y, z int) {
	z = id % side
	rest := id / side
	y = rest % side
	x = rest / side
	return
}

// BoxOf returns the box index containing cell (x,y) for magnitude m.
func BoxOf(x, y, m int) int {
	return (y/m)*m + (x / m)
}

// symbolAlphabet is the base-36 alphabet used to render/parse symbols above
// single-digit side lengths, per Parser.MAX_RADIX.
const symbolAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SymbolOf renders the 1-based symbol for a 0-based digit z in the
// MaxRadix-bounded alphabet. z=-1 (unknown) renders as a space.
func SymbolOf(z int) byte {
	if z < 0 {
		return ' '
	}
	symbol := z + 1
	if symbol < 0 || symbol >= len(symbolAlphabet) {
		return '?'
	}
	return symbolAlphabet[symbol]
}

// ValueOf parses a single rendered symbol into a 0-based digit z, or -1 for
// a blank ('0', '.', or space). Returns false for a character outside the
// alphabet.
func ValueOf(c byte) (z int, ok bool) {
	switch {
	case c == '.' || c == ' ' || c == '0':
		return -1, true
	case c >= '1' && c <= '9':
		return int(c - '1'), true // symbol (c-'0') is 1..9, z = symbol-1
	case c >= 'A' && c <= 'Z':
		return 9 + int(c-'A'), true // symbol 10+(c-'A'), z = symbol-1
	case c >= 'a' && c <= 'z':
		return 9 + int(c-'a'), true
	}
	return 0, false
}

// ValidMagnitude reports whether m is within the supported range.
func ValidMagnitude(m int) bool {
	return m >= constants.MinMagnitude && m <= constants.MaxMagnitude
}
