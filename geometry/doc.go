// Package geometry holds the planar primitives used by the closest-edge
// insertion heuristic: the City value type and two pure distance functions.
//
//   - EuclideanDistance: straight-line distance between two cities.
//   - PerpendicularDistance: distance from a city to the infinite line
//     through two other cities (the insertion cost of the greedy engine).
//
// Both functions are side-effect free and allocation free. Coordinates are
// handled as gonum r2.Vec values internally.
//
// Degenerate geometry:
//
//	When the two line endpoints coincide (a zero-length tour edge, reachable
//	when the input holds duplicate coordinates) PerpendicularDistance falls
//	back to the point-to-point distance instead of dividing by zero.
//
// Line, not segment:
//
//	The perpendicular distance is measured against the whole line. For
//	obtuse configurations this undercounts the true detour of inserting the
//	city between the two endpoints. The heuristic has always behaved this
//	way and the package keeps it.
package geometry
