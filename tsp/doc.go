// Package tsp builds approximate Euclidean Travelling Salesman tours with the
// greedy closest-edge insertion heuristic.
//
// Pipeline:
//
//   - Seed: take the anchor city (the first available one by default), find
//     its nearest neighbour and form a two-city ring.
//   - Engine: repeatedly pick the (tour edge, unplaced city) pair with the
//     smallest perpendicular insertion distance and insert that city between
//     the edge endpoints, until no city is left.
//   - Solve: validate the input, run the Engine to completion and return the
//     closed tour with its total length.
//
// The tour is a genuine cycle: the edge from the last city back to the first
// is structural and there is no duplicated closing city.
//
// Determinism:
//
//	No randomness anywhere. Ties are resolved by iteration order (edges first,
//	then unplaced cities in input order), so the same input order always
//	yields the same tour and length.
//
// Complexity:
//
//	One Engine step costs O(|tour|·|unplaced|); a full solve is O(n³) time
//	and O(n) memory. Intended for tens to low hundreds of cities.
//
// Errors are package-level sentinels (see types.go); branch with errors.Is.
package tsp
