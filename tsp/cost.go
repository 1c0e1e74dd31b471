// Package tsp — cost utilities.
//
// TourLength sums Euclidean edge lengths around a closed tour, the
// wrap-around edge included, and stabilises the result to 1e-9 to avoid
// cross-platform floating-point drift in reports and tests.
package tsp

import (
	"math"

	"github.com/katalvlaran/greedytsp/geometry"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the cyclic sum of EuclideanDistance over consecutive
// cities of tour, including the edge from the last city back to the first.
// Tours with fewer than two cities have length 0.
//
// Complexity: O(n) time, O(1) space.
func TourLength(tour []geometry.City) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += geometry.EuclideanDistance(tour[i], tour[(i+1)%n])
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
