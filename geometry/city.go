package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrEmptyID is returned when a city carries no label.
var ErrEmptyID = errors.New("geometry: empty city id")

// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
// Such a city would poison every distance it takes part in.
var ErrNonFiniteCoordinate = errors.New("geometry: non-finite coordinate")

// City is a labelled point in the plane. It is a value type and is never
// mutated once created by the input collaborator.
type City struct {
	// ID is the unique, stable label assigned at load time.
	ID string `json:"id" yaml:"id"`

	// X and Y are the planar coordinates.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewCity is a small convenience constructor.
func NewCity(id string, x, y float64) City {
	return City{ID: id, X: x, Y: y}
}

// Vec returns the coordinates as a gonum vector.
func (c City) Vec() r2.Vec {
	return r2.Vec{X: c.X, Y: c.Y}
}

// String renders the city as "id(x, y)".
func (c City) String() string {
	return fmt.Sprintf("%s(%g, %g)", c.ID, c.X, c.Y)
}

// ValidateCity checks that c has a label and finite coordinates.
//
// Complexity: O(1).
func ValidateCity(c City) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if !isFinite(c.X) || !isFinite(c.Y) {
		return fmt.Errorf("city %q: %w", c.ID, ErrNonFiniteCoordinate)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
