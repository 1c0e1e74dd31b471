// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedytsp/geometry"
	"github.com/katalvlaran/greedytsp/tsp"
)

const (
	// epsTiny is the tolerance for exact-geometry length checks.
	epsTiny = 1e-9

	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(42)
)

// Repeat runs fn n times to surface hidden nondeterminism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// city is a terse constructor for table tests.
func city(id string, x, y float64) geometry.City {
	return geometry.NewCity(id, x, y)
}

// collinear3 is A(0,0), B(1,0), C(2,0).
func collinear3() []geometry.City {
	return []geometry.City{city("A", 0, 0), city("B", 1, 0), city("C", 2, 0)}
}

// unitSquare lists the corners of the unit square counter-clockwise.
func unitSquare() []geometry.City {
	return []geometry.City{city("A", 0, 0), city("B", 1, 0), city("C", 1, 1), city("D", 0, 1)}
}

// rotate returns cities shifted left by k positions.
func rotate(cities []geometry.City, k int) []geometry.City {
	n := len(cities)
	out := make([]geometry.City, n)
	for i := 0; i < n; i++ {
		out[i] = cities[(i+k)%n]
	}
	return out
}

// reversed returns cities in reverse order.
func reversed(cities []geometry.City) []geometry.City {
	n := len(cities)
	out := make([]geometry.City, n)
	for i := range cities {
		out[n-1-i] = cities[i]
	}
	return out
}

// requirePermutation asserts the tour visits every input city exactly once.
func requirePermutation(t *testing.T, tour, input []geometry.City) {
	t.Helper()
	require.Len(t, tour, len(input))
	require.NoError(t, tsp.ValidateTour(tour, input))
}

// labels maps cities to labels.
func labels(cities []geometry.City) []string {
	out := make([]string, len(cities))
	for i := range cities {
		out[i] = cities[i].ID
	}
	return out
}
