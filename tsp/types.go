package tsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Sentinel errors.
var (
	// ErrInsufficientInput is returned when fewer than two cities are supplied.
	ErrInsufficientInput = errors.New("tsp: at least two cities are required")

	// ErrDuplicateID is returned when two input cities share a label.
	ErrDuplicateID = errors.New("tsp: duplicate city id")

	// ErrStartOutOfRange is returned when the anchor index is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start index out of range")

	// ErrComplete is returned by Engine.Step once every city is placed.
	ErrComplete = errors.New("tsp: tour already complete")

	// ErrInvariantViolation marks a broken Tour/Unplaced invariant. It is a
	// defect, never a transient condition; see InvariantError.
	ErrInvariantViolation = errors.New("tsp: invariant violation")
)

// InvariantError carries the state that was observed when an invariant broke.
// errors.Is(err, ErrInvariantViolation) holds for every *InvariantError.
type InvariantError struct {
	// Reason is a short description of the broken invariant.
	Reason string
	// Tour lists the tour labels in cyclic order at the time of failure.
	Tour []string
	// Unplaced lists the labels that were still waiting for insertion.
	Unplaced []string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s (tour=[%s] unplaced=[%s])",
		ErrInvariantViolation, e.Reason,
		strings.Join(e.Tour, " "), strings.Join(e.Unplaced, " "))
}

// Unwrap exposes ErrInvariantViolation to errors.Is.
func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// State is the lifecycle phase of an Engine.
type State int

const (
	// StateSeeding is the initial phase, before the two-city ring exists.
	StateSeeding State = iota
	// StateInserting means cities are still waiting to be placed.
	StateInserting
	// StateComplete is terminal: the tour covers every city.
	StateComplete
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateSeeding:
		return "seeding"
	case StateInserting:
		return "inserting"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Step records one insertion made by the Engine.
type Step struct {
	// Iteration is 1-based; the last step of an n-city solve is n−2.
	Iteration int
	// City is the city that was inserted.
	City geometry.City
	// EdgeStart and EdgeEnd are the endpoints of the edge that was split.
	// City now sits between them.
	EdgeStart geometry.City
	EdgeEnd   geometry.City
	// Distance is the perpendicular insertion distance that won the scan.
	Distance float64
	// TourSize is the tour size after the insertion.
	TourSize int
	// Remaining is the number of unplaced cities after the insertion.
	Remaining int
}

// Result is the outcome of Solve.
type Result struct {
	// Tour lists every input city exactly once in visiting order. The edge
	// from the last city back to the first closes the cycle.
	Tour []geometry.City
	// Length is the cyclic sum of Euclidean edge lengths, rounded to 1e-9.
	Length float64
	// Iterations is the number of insertion steps performed (n−2 on success).
	Iterations int
	// State is the engine state reached; StateComplete on success.
	State State
}

// Labels returns the city labels of the tour in visiting order.
func (r Result) Labels() []string {
	return labelsOf(r.Tour)
}

// labelsOf maps cities to their labels.
//
// Complexity: O(n).
func labelsOf(cities []geometry.City) []string {
	out := make([]string, len(cities))

	var i int
	for i = range cities {
		out[i] = cities[i].ID
	}

	return out
}
