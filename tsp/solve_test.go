package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greedytsp/geometry"
	"github.com/katalvlaran/greedytsp/instance"
	"github.com/katalvlaran/greedytsp/tsp"
)

// TestSolve_Collinear: A(0,0), B(1,0), C(2,0) → length 1+1+2 = 4.
func TestSolve_Collinear(t *testing.T) {
	res, err := tsp.Solve(context.Background(), collinear3())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C", "B"}, res.Labels())
	assert.InDelta(t, 4.0, res.Length, epsTiny)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, tsp.StateComplete, res.State)
}

// TestSolve_SquarePerimeter converges to the perimeter from every seed and
// every input rotation, never to a crossing tour.
func TestSolve_SquarePerimeter(t *testing.T) {
	base := unitSquare()
	inputs := map[string][]geometry.City{}
	for k := 0; k < len(base); k++ {
		inputs["rot"+string(rune('0'+k))] = rotate(base, k)
		inputs["rev"+string(rune('0'+k))] = rotate(reversed(base), k)
	}

	for name, in := range inputs {
		for start := range in {
			res, err := tsp.Solve(context.Background(), in, tsp.WithStart(start))
			require.NoError(t, err, "%s start=%d", name, start)
			requirePermutation(t, res.Tour, in)
			assert.InDelta(t, 4.0, res.Length, epsTiny, "%s start=%d tour=%v", name, start, res.Labels())
		}
	}
}

func TestSolve_SquareTourOrder(t *testing.T) {
	res, err := tsp.Solve(context.Background(), unitSquare())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C", "B"}, res.Labels())
}

// TestSolve_Coincident engages the zero-length edge guard.
func TestSolve_Coincident(t *testing.T) {
	in := []geometry.City{city("A", 0, 0), city("A2", 0, 0), city("B", 3, 4)}
	res, err := tsp.Solve(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "A2"}, res.Labels())
	assert.InDelta(t, 10.0, res.Length, epsTiny)
	assert.False(t, math.IsNaN(res.Length))
}

func TestSolve_ManyCoincident(t *testing.T) {
	in := []geometry.City{
		city("a", 1, 1), city("b", 1, 1), city("c", 1, 1),
		city("d", 5, 1), city("e", 5, 1), city("f", 3, 4),
	}
	res, err := tsp.Solve(context.Background(), in, tsp.WithInvariantChecks(true))
	require.NoError(t, err)
	requirePermutation(t, res.Tour, in)
	assert.False(t, math.IsNaN(res.Length))
	assert.False(t, math.IsInf(res.Length, 0))
}

// TestSolve_Properties runs the permutation/length properties on generated
// instances of several shapes.
func TestSolve_Properties(t *testing.T) {
	uniform, err := instance.Uniform(60, instance.WithSeed(seedDet))
	require.NoError(t, err)
	clustered, err := instance.Clustered(45, 5, instance.WithSeed(seedDet))
	require.NoError(t, err)
	grid, err := instance.Grid(5, 6)
	require.NoError(t, err)
	circle, err := instance.Circle(24, instance.WithSeed(seedDet), instance.WithJitter(0.5))
	require.NoError(t, err)

	sets := map[string][]geometry.City{
		"uniform":   uniform,
		"clustered": clustered,
		"grid":      grid,
		"circle":    circle,
	}
	for name, in := range sets {
		t.Run(name, func(t *testing.T) {
			res, err := tsp.Solve(context.Background(), in, tsp.WithInvariantChecks(true))
			require.NoError(t, err)
			requirePermutation(t, res.Tour, in)
			assert.Equal(t, len(in)-2, res.Iterations)
			assert.GreaterOrEqual(t, res.Length, 0.0)
			assert.False(t, math.IsInf(res.Length, 0))
			assert.InDelta(t, tsp.TourLength(res.Tour), res.Length, epsTiny)
			// The anchor stays in front.
			assert.Equal(t, in[0].ID, res.Tour[0].ID)
		})
	}
}

// TestSolve_Deterministic: identical input order ⇒ identical tour and length.
func TestSolve_Deterministic(t *testing.T) {
	in, err := instance.Uniform(80, instance.WithSeed(seedDet))
	require.NoError(t, err)

	first, err := tsp.Solve(context.Background(), in)
	require.NoError(t, err)

	Repeat(t, 3, func(t *testing.T) {
		again, err := tsp.Solve(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, first.Tour, again.Tour)
		assert.Equal(t, first.Length, again.Length)
	})
}

// TestSolve_InputErrors checks the sentinel for each rejected input.
func TestSolve_InputErrors(t *testing.T) {
	cases := []struct {
		name string
		in   []geometry.City
		opts []tsp.Option
		want error
	}{
		{"empty", nil, nil, tsp.ErrInsufficientInput},
		{"single", []geometry.City{city("x", 0, 0)}, nil, tsp.ErrInsufficientInput},
		{"duplicate id", []geometry.City{city("x", 0, 0), city("x", 1, 0)}, nil, tsp.ErrDuplicateID},
		{"empty id", []geometry.City{city("", 0, 0), city("y", 1, 0)}, nil, geometry.ErrEmptyID},
		{"nan", []geometry.City{city("x", math.NaN(), 0), city("y", 1, 0)}, nil, geometry.ErrNonFiniteCoordinate},
		{"inf", []geometry.City{city("x", 0, 0), city("y", math.Inf(1), 0)}, nil, geometry.ErrNonFiniteCoordinate},
		{"start", collinear3(), []tsp.Option{tsp.WithStart(3)}, tsp.ErrStartOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tsp.Solve(context.Background(), tc.in, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tsp.StateSeeding, res.State)
			assert.Empty(t, res.Tour)
		})
	}
}

// TestSolve_Cancelled surfaces the partial tour with the context error.
func TestSolve_Cancelled(t *testing.T) {
	in, err := instance.Uniform(30, instance.WithSeed(seedDet))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := tsp.Solve(ctx, in, tsp.WithObserver(func(s tsp.Step) {
		if s.Iteration == 3 {
			cancel()
		}
	}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, tsp.StateInserting, res.State)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.Tour, 5)
}

func TestSolve_TwoCities(t *testing.T) {
	res, err := tsp.Solve(context.Background(), []geometry.City{city("p", 0, 0), city("q", 0, 2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, res.Labels())
	assert.InDelta(t, 4.0, res.Length, epsTiny)
	assert.Equal(t, 0, res.Iterations)
}

// TestSolve_DoesNotMutateInput keeps the caller's slice intact.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	in, err := instance.Uniform(20, instance.WithSeed(seedDet))
	require.NoError(t, err)
	snapshot := append([]geometry.City(nil), in...)

	_, err = tsp.Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, snapshot, in)
}

func TestTourLength(t *testing.T) {
	assert.Equal(t, 0.0, tsp.TourLength(nil))
	assert.Equal(t, 0.0, tsp.TourLength([]geometry.City{city("a", 1, 1)}))
	assert.InDelta(t, 4.0, tsp.TourLength(unitSquare()), epsTiny)
	// Crossing order A C B D is longer than the perimeter.
	sq := unitSquare()
	crossing := []geometry.City{sq[0], sq[2], sq[1], sq[3]}
	assert.InDelta(t, 2+2*math.Sqrt2, tsp.TourLength(crossing), epsTiny)
}
