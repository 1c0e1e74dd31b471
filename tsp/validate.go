// Package tsp — input validation.
//
// validateCities runs before any work is done and rejects inputs the engine
// cannot honour: fewer than two cities, empty or duplicate labels, and
// non-finite coordinates. Duplicate coordinates are allowed; the distance
// utility guards the zero-length edges they produce.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/greedytsp/geometry"
)

const (
	methodSolve = "Solve"
	methodSeed  = "Seed"
	methodStep  = "Step"
	methodRun   = "Run"

	minCities = 2
)

// validateCities enforces len ≥ 2, valid cities and unique labels.
//
// Complexity: O(n) time and O(n) extra space.
func validateCities(cities []geometry.City) error {
	if len(cities) < minCities {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodSolve, len(cities), minCities, ErrInsufficientInput)
	}

	seen := make(map[string]struct{}, len(cities))

	var (
		i   int
		ok  bool
		err error
	)
	for i = range cities {
		if err = geometry.ValidateCity(cities[i]); err != nil {
			return fmt.Errorf("%s: city #%d: %w", methodSolve, i, err)
		}
		if _, ok = seen[cities[i].ID]; ok {
			return fmt.Errorf("%s: %q: %w", methodSolve, cities[i].ID, ErrDuplicateID)
		}
		seen[cities[i].ID] = struct{}{}
	}

	return nil
}

// validateStart verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStart(n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}
