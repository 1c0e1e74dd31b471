package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// EuclideanDistance returns sqrt((bx−ax)² + (by−ay)²).
//
// The result is symmetric, non-negative and zero iff a and b are coincident.
//
// Complexity: O(1).
func EuclideanDistance(a, b City) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// IsDegenerateEdge reports whether the edge a→b has zero length.
//
// Complexity: O(1).
func IsDegenerateEdge(a, b City) bool {
	return a.X == b.X && a.Y == b.Y
}

// PerpendicularDistance returns the distance from p to the infinite line
// through segA and segB:
//
//	|(bx−ax)(ay−py) − (ax−px)(by−ay)| / |segA segB|
//
// The numerator is the cross product of (segB − segA) and (segA − p), i.e.
// twice the area of the triangle (segA, segB, p).
//
// If segA and segB coincide there is no line; the function returns
// EuclideanDistance(p, segA) instead.
//
// Complexity: O(1).
func PerpendicularDistance(p, segA, segB City) float64 {
	if IsDegenerateEdge(segA, segB) {
		return EuclideanDistance(p, segA)
	}

	var (
		edge   = r2.Sub(segB.Vec(), segA.Vec())
		toLine = r2.Sub(segA.Vec(), p.Vec())
	)

	return math.Abs(r2.Cross(edge, toLine)) / r2.Norm(edge)
}
