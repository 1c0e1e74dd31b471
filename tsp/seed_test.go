package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedytsp/geometry"
	"github.com/katalvlaran/greedytsp/tsp"
)

// TestSeed_Collinear picks B as A's nearest neighbour (1 < 2).
func TestSeed_Collinear(t *testing.T) {
	in := collinear3()
	tour, unplaced, err := tsp.Seed(in, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, tour.Labels())
	assert.Equal(t, 2, tour.Edges())
	assert.Equal(t, []string{"C"}, labels(unplaced))
	// Input untouched.
	assert.Equal(t, collinear3(), in)
}

// TestSeed_TieKeepsFirst checks first-encountered tie breaking.
func TestSeed_TieKeepsFirst(t *testing.T) {
	in := []geometry.City{city("O", 0, 0), city("E", 1, 0), city("N", 0, 1), city("W", -1, 0)}
	tour, unplaced, err := tsp.Seed(in, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "E"}, tour.Labels())
	assert.Equal(t, []string{"N", "W"}, labels(unplaced))
}

// TestSeed_Start anchors on a non-zero index; unplaced keeps input order.
func TestSeed_Start(t *testing.T) {
	in := []geometry.City{city("a", 0, 0), city("b", 10, 0), city("c", 11, 0), city("d", 5, 5)}
	tour, unplaced, err := tsp.Seed(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, tour.Labels())
	assert.Equal(t, []string{"a", "d"}, labels(unplaced))
}

func TestSeed_Errors(t *testing.T) {
	_, _, err := tsp.Seed(nil, 0)
	assert.ErrorIs(t, err, tsp.ErrInsufficientInput)

	_, _, err = tsp.Seed([]geometry.City{city("x", 0, 0)}, 0)
	assert.ErrorIs(t, err, tsp.ErrInsufficientInput)

	_, _, err = tsp.Seed(collinear3(), 3)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, _, err = tsp.Seed(collinear3(), -1)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

// TestSeed_TwoCities leaves nothing unplaced.
func TestSeed_TwoCities(t *testing.T) {
	tour, unplaced, err := tsp.Seed([]geometry.City{city("p", 0, 0), city("q", 3, 4)}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, tour.Len())
	assert.Empty(t, unplaced)
	assert.InDelta(t, 10.0, tour.Length(), epsTiny)
}
