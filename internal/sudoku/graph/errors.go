package graph

import "errors"

// Sentinel errors for the error kinds named in the spec. Callers use
// errors.Is to discriminate.
var (
	// ErrMalformedInput is returned at puzzle construction when the value
	// list length or contents are inconsistent with the declared magnitude.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoUnaccountedClaims is raised when an event would record zero new
	// falsifications — a technique reporting progress that falsified
	// nothing is always a bug.
	ErrNoUnaccountedClaims = errors.New("event falsified no unaccounted claims")

	// ErrUnsatisfiable is raised when any fact's claim set drops to zero.
	// The puzzle is poisoned once this fires.
	ErrUnsatisfiable = errors.New("puzzle is unsatisfiable")

	// ErrMisuseCrossPuzzle is raised when comparing or merging entities
	// that belong to different puzzles.
	ErrMisuseCrossPuzzle = errors.New("misuse across puzzles")
)
