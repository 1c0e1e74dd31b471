// Package tsp — nearest-neighbour seeding.
//
// Seed turns the full city list into a two-city ring [S, N] and the list of
// cities still to place:
//
//  1. S is the anchor (cities[start], the first available city by default).
//  2. N is the remaining city closest to S; strict "<" keeps the first
//     candidate encountered on ties, so the choice follows input order.
//  3. Both are removed from the unplaced list, which keeps input order.
//
// The ring is closed structurally (edge N→S is the wrap-around edge).
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Seed builds the initial two-city tour.
//
// Contracts:
//   - len(cities) ≥ 2, otherwise ErrInsufficientInput.
//   - 0 ≤ start < len(cities), otherwise ErrStartOutOfRange.
//   - cities is not modified; the returned unplaced slice is a fresh copy.
//
// Complexity: O(n) time, O(n) space.
func Seed(cities []geometry.City, start int) (*Tour, []geometry.City, error) {
	n := len(cities)
	if n < minCities {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSeed, n, minCities, ErrInsufficientInput)
	}
	if err := validateStart(n, start); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSeed, err)
	}

	anchor := cities[start]

	// Nearest neighbour of the anchor, first-encountered on ties.
	var (
		i       int
		d       float64
		best    = -1
		bestLen = math.Inf(1)
	)
	for i = 0; i < n; i++ {
		if i == start {
			continue
		}
		d = geometry.EuclideanDistance(anchor, cities[i])
		if d < bestLen {
			bestLen = d
			best = i
		}
	}

	if best == -1 {
		// Only reachable when every distance is NaN or +Inf.
		return nil, nil, fmt.Errorf("%s: no finite distance from %q: %w", methodSeed, anchor.ID, geometry.ErrNonFiniteCoordinate)
	}

	unplaced := make([]geometry.City, 0, n-2)
	for i = 0; i < n; i++ {
		if i == start || i == best {
			continue
		}
		unplaced = append(unplaced, cities[i])
	}

	return newTour(anchor, cities[best]), unplaced, nil
}
