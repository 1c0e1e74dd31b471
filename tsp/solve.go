// Package tsp — entry point.
//
// Solve is the canonical way to run the heuristic: validate, seed, insert
// until done, verify the permutation property and report the length.
package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Solve computes a closed tour over cities with closest-edge insertion.
//
// Contracts:
//   - len(cities) ≥ 2 with unique, non-empty IDs and finite coordinates.
//   - cities is not modified.
//   - Same input order and options ⇒ identical tour and length.
//
// On failure the returned Result holds the partial tour and the state that
// was reached, so callers can surface both alongside the error.
//
// Complexity: O(n³) time, O(n) space.
func Solve(ctx context.Context, cities []geometry.City, opts ...Option) (Result, error) {
	eng, err := NewEngine(cities, opts...)
	if err != nil {
		return Result{State: StateSeeding}, err
	}

	if err = eng.Run(ctx); err != nil {
		return eng.Result(), err
	}

	res := eng.Result()
	if err = ValidateTour(res.Tour, cities); err != nil {
		return res, fmt.Errorf("%s: %w", methodSolve, err)
	}

	return res, nil
}
