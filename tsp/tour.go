// Package tsp — tour ring shared by the seeder and the insertion engine.
//
// Tour is an indexable cyclic sequence: edge i joins At(i) and At(i+1 mod n),
// so the wrap-around edge needs no sentinel closing city. Insertion is a
// single positional insert.
//
// Provided helpers:
//   - Tour.Edge / Tour.InsertAfter: O(1) edge access, O(n) insertion.
//   - ValidateTour: permutation check of a finished tour against the input.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - Tour.String: compact printable representation for tests/debug.
package tsp

import (
	"strings"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Tour is a closed, cyclic sequence of cities. The zero value is an empty
// tour. Tour is not safe for concurrent mutation; it is owned by one Engine.
type Tour struct {
	cities []geometry.City
}

// newTour returns a ring over the given cities, copying them.
//
// Complexity: O(n) time, O(n) space.
func newTour(cities ...geometry.City) *Tour {
	t := &Tour{cities: make([]geometry.City, len(cities), len(cities)+1)}
	copy(t.cities, cities)

	return t
}

// Len returns the number of cities in the ring.
func (t *Tour) Len() int { return len(t.cities) }

// Edges returns the number of directed edges in the ring. A ring of n ≥ 2
// cities has n edges (the wrap-around edge included); smaller rings have none.
func (t *Tour) Edges() int {
	if len(t.cities) < 2 {
		return 0
	}

	return len(t.cities)
}

// At returns the city at position i modulo Len. It panics on an empty tour.
//
// Complexity: O(1).
func (t *Tour) At(i int) geometry.City {
	n := len(t.cities)
	i %= n
	if i < 0 {
		i += n
	}

	return t.cities[i]
}

// Edge returns the endpoints of edge i: (At(i), At(i+1)).
//
// Complexity: O(1).
func (t *Tour) Edge(i int) (geometry.City, geometry.City) {
	return t.At(i), t.At(i + 1)
}

// InsertAfter places c immediately after position i (so between the
// endpoints of edge i), preserving the cyclic order of every other city.
// For the wrap-around edge (i == Len-1) the city is appended.
//
// Contracts:
//   - 0 ≤ i < Len.
//
// Complexity: O(n) time (single shift), amortised O(1) allocations.
func (t *Tour) InsertAfter(i int, c geometry.City) {
	pos := i + 1
	t.cities = append(t.cities, geometry.City{})
	copy(t.cities[pos+1:], t.cities[pos:])
	t.cities[pos] = c
}

// Cities returns an independent copy of the tour in visiting order.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) Cities() []geometry.City {
	out := make([]geometry.City, len(t.cities))
	copy(out, t.cities)

	return out
}

// Labels returns the city labels in visiting order.
func (t *Tour) Labels() []string {
	return labelsOf(t.cities)
}

// Length returns the cyclic sum of Euclidean edge lengths.
//
// Complexity: O(n).
func (t *Tour) Length() float64 {
	return TourLength(t.cities)
}

// String returns e.g. "[A C B | A]" where the bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func (t *Tour) String() string {
	if len(t.cities) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strings.Join(t.Labels(), " "))
	sb.WriteString(" | ")
	sb.WriteString(t.cities[0].ID)
	sb.WriteByte(']')

	return sb.String()
}

// ValidateTour checks that tour visits every city of input exactly once and
// nothing else.
//
// Returns an *InvariantError describing the first violation found.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []geometry.City, input []geometry.City) error {
	if len(tour) != len(input) {
		return &InvariantError{
			Reason:   "tour size differs from input size",
			Tour:     labelsOf(tour),
			Unplaced: missingLabels(tour, input),
		}
	}

	want := make(map[string]struct{}, len(input))
	var i int
	for i = range input {
		want[input[i].ID] = struct{}{}
	}

	var ok bool
	for i = range tour {
		if _, ok = want[tour[i].ID]; !ok {
			return &InvariantError{
				Reason:   "tour holds unknown or repeated city " + tour[i].ID,
				Tour:     labelsOf(tour),
				Unplaced: missingLabels(tour, input),
			}
		}
		delete(want, tour[i].ID)
	}

	return nil
}

// missingLabels lists input labels absent from tour, in input order.
//
// Complexity: O(n) time, O(n) space.
func missingLabels(tour []geometry.City, input []geometry.City) []string {
	seen := make(map[string]struct{}, len(tour))

	var i int
	for i = range tour {
		seen[tour[i].ID] = struct{}{}
	}

	out := make([]string, 0)
	var ok bool
	for i = range input {
		if _, ok = seen[input[i].ID]; !ok {
			out = append(out, input[i].ID)
		}
	}

	return out
}

// EqualToursModuloRotation reports whether a and b describe the same cycle
// in the same direction, regardless of which city is listed first.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []geometry.City) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}

	// Find a[0] in b.
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j].ID == a[0].ID {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
