// Package tsp — greedy closest-edge insertion engine.
//
// Engine owns the tour ring and the unplaced list for one solve and moves
// through three states:
//
//	Seeding ──(Seed ok)──▶ Inserting ──(unplaced empty)──▶ Complete
//	                          ▲    │
//	                          └────┘ one Step per city
//
// Each Step scans every (edge, unplaced city) pair, edges first then cities
// in input order, and keeps a best-so-far candidate returned by the scan.
// Strict "<" keeps the first pair encountered on ties. The winning city is
// inserted between the edge endpoints and removed from the unplaced list.
//
// Failures are invariant violations (defects, not transient conditions):
// they are returned as *InvariantError with the current tour and unplaced
// labels, the engine stops, and every later Step returns the same error.
package tsp

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Engine runs the closest-edge insertion loop. It is single-threaded and
// must not be shared between goroutines.
type Engine struct {
	cfg      engineConfig
	input    []geometry.City
	tour     *Tour
	unplaced []geometry.City
	state    State
	iter     int
	failed   error
}

// candidate is the best-so-far record threaded through the scan.
type candidate struct {
	dist       float64 // perpendicular insertion distance
	edge       int     // edge index in the tour; -1 if none yet
	city       int     // index into the unplaced list; -1 if none yet
	degenerate bool    // the winning edge has zero length
}

// NewEngine validates cities, seeds the two-city ring and returns an engine
// in StateInserting, or StateComplete when only two cities were given.
//
// Errors: ErrInsufficientInput, ErrDuplicateID, ErrStartOutOfRange,
// geometry.ErrEmptyID, geometry.ErrNonFiniteCoordinate.
//
// Complexity: O(n) time, O(n) space.
func NewEngine(cities []geometry.City, opts ...Option) (*Engine, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   newEngineConfig(opts...),
		input: append([]geometry.City(nil), cities...),
		state: StateSeeding,
	}

	tour, unplaced, err := Seed(e.input, e.cfg.start)
	if err != nil {
		return nil, err
	}
	e.tour, e.unplaced = tour, unplaced
	e.state = StateInserting

	e.cfg.logger.Debug("tsp: seeded tour",
		zap.String("anchor", tour.At(0).ID),
		zap.String("nearest", tour.At(1).ID),
		zap.Int("unplaced", len(unplaced)),
	)

	if len(e.unplaced) == 0 {
		e.state = StateComplete
	}

	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Iterations returns the number of insertions performed so far.
func (e *Engine) Iterations() int { return e.iter }

// Tour returns a copy of the current (possibly partial) tour.
func (e *Engine) Tour() []geometry.City { return e.tour.Cities() }

// Unplaced returns a copy of the cities still waiting for insertion,
// in input order.
func (e *Engine) Unplaced() []geometry.City {
	return append([]geometry.City(nil), e.unplaced...)
}

// Result snapshots the engine into a Result. Before completion the tour is
// partial and Length covers only the cities placed so far.
//
// Complexity: O(n).
func (e *Engine) Result() Result {
	tour := e.tour.Cities()

	return Result{
		Tour:       tour,
		Length:     TourLength(tour),
		Iterations: e.iter,
		State:      e.state,
	}
}

// Step performs one insertion.
//
// Returns ErrComplete (wrapped) once the tour covers every city, and an
// *InvariantError if the tour/unplaced invariants are broken.
//
// Complexity: O(|tour|·|unplaced|) time, O(1) extra space.
func (e *Engine) Step() (Step, error) {
	if e.failed != nil {
		return Step{}, e.failed
	}
	if e.state == StateComplete {
		return Step{}, fmt.Errorf("%s: %w", methodStep, ErrComplete)
	}
	if e.tour.Edges() < 2 {
		return Step{}, e.fail("tour has fewer than two edges while cities remain unplaced")
	}

	best := scanBest(e.tour, e.unplaced)
	if best.edge < 0 || best.city < 0 {
		return Step{}, e.fail("no finite insertion distance found")
	}

	var (
		edgeStart, edgeEnd = e.tour.Edge(best.edge)
		city               = e.unplaced[best.city]
	)
	e.tour.InsertAfter(best.edge, city)
	e.unplaced = removeAt(e.unplaced, best.city)
	e.iter++

	if e.tour.Len()+len(e.unplaced) != len(e.input) {
		return Step{}, e.fail("tour and unplaced sizes do not add up to the input size")
	}
	if e.cfg.checkInvariants {
		if reason := e.coverageViolation(); reason != "" {
			return Step{}, e.fail(reason)
		}
	}

	step := Step{
		Iteration: e.iter,
		City:      city,
		EdgeStart: edgeStart,
		EdgeEnd:   edgeEnd,
		Distance:  best.dist,
		TourSize:  e.tour.Len(),
		Remaining: len(e.unplaced),
	}

	if best.degenerate {
		e.cfg.logger.Debug("tsp: zero-length edge, used point distance",
			zap.String("edge_start", edgeStart.ID),
			zap.String("edge_end", edgeEnd.ID),
		)
	}
	e.cfg.logger.Debug("tsp: inserted city",
		zap.Int("iteration", step.Iteration),
		zap.String("city", city.ID),
		zap.String("edge_start", edgeStart.ID),
		zap.String("edge_end", edgeEnd.ID),
		zap.Float64("distance", step.Distance),
		zap.Int("remaining", step.Remaining),
	)
	if e.cfg.observer != nil {
		e.cfg.observer(step)
	}

	if len(e.unplaced) == 0 {
		if err := ValidateTour(e.tour.cities, e.input); err != nil {
			e.failed = err
			return step, err
		}
		e.state = StateComplete
	}

	return step, nil
}

// Run steps until the tour is complete. ctx is only consulted between steps,
// so an embedding application can bound wall-clock time; a cancelled run
// leaves the partial tour readable through Tour and Result.
//
// Complexity: O(n³) time overall.
func (e *Engine) Run(ctx context.Context) error {
	var err error
	for e.state != StateComplete {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("%s: stopped after %d steps: %w", methodRun, e.iter, err)
		}
		if _, err = e.Step(); err != nil {
			return err
		}
	}

	return nil
}

// scanBest returns the (edge, city) pair with the smallest perpendicular
// distance, first-encountered on ties (edge order, then city order).
//
// Complexity: O(edges·cities) time, O(1) space.
func scanBest(t *Tour, unplaced []geometry.City) candidate {
	best := candidate{dist: math.Inf(1), edge: -1, city: -1}

	var (
		edges = t.Edges()
		ei    int
		ci    int
		a, b  geometry.City
		d     float64
	)
	for ei = 0; ei < edges; ei++ {
		a, b = t.Edge(ei)
		for ci = range unplaced {
			d = geometry.PerpendicularDistance(unplaced[ci], a, b)
			if d < best.dist {
				best = candidate{dist: d, edge: ei, city: ci, degenerate: geometry.IsDegenerateEdge(a, b)}
			}
		}
	}

	return best
}

// removeAt deletes s[i] keeping the order of the rest.
//
// Complexity: O(len(s)).
func removeAt(s []geometry.City, i int) []geometry.City {
	return append(s[:i], s[i+1:]...)
}

// coverageViolation checks that tour and unplaced are disjoint, duplicate
// free and together cover the input. It returns "" when everything holds.
//
// Complexity: O(n) time, O(n) space.
func (e *Engine) coverageViolation() string {
	want := make(map[string]struct{}, len(e.input))

	var i int
	for i = range e.input {
		want[e.input[i].ID] = struct{}{}
	}

	var (
		ok   bool
		pool = [2][]geometry.City{e.tour.cities, e.unplaced}
		p    int
	)
	for p = range pool {
		for i = range pool[p] {
			if _, ok = want[pool[p][i].ID]; !ok {
				return "city " + pool[p][i].ID + " is unknown or present twice"
			}
			delete(want, pool[p][i].ID)
		}
	}
	if len(want) != 0 {
		return fmt.Sprintf("%d input cities are neither placed nor unplaced", len(want))
	}

	return ""
}

// fail records a fatal invariant violation with the current state.
func (e *Engine) fail(reason string) error {
	e.failed = &InvariantError{
		Reason:   reason,
		Tour:     e.tour.Labels(),
		Unplaced: labelsOf(e.unplaced),
	}
	e.cfg.logger.Error("tsp: invariant violation", zap.Error(e.failed))

	return e.failed
}
