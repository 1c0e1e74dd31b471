// Package greedytsp builds closed Euclidean tours with greedy
// closest-edge insertion.
//
// A tour starts as a two-city ring: an anchor and its nearest neighbour.
// Every step then scans all (edge, unplaced city) pairs, picks the city
// with the smallest perpendicular distance to the line through an edge
// and splices it between that edge's endpoints. The loop ends when every
// city is on the tour.
//
// Under the hood, everything is organized under a few subpackages:
//
//	geometry/       City, Euclidean and perpendicular distance
//	tsp/            Seed, Engine (step-wise insertion) and Solve
//	instance/       seeded synthetic instances: uniform, circle, grid, clustered
//	cityio/         TSPLIB and CSV readers; text, YAML, TSPLIB tour and GeoJSON writers
//	cmd/greedytsp/  the solve, generate and bench commands
//
// Quick ASCII example:
//
//	    D───C
//	    │   │
//	    A───B
//
//	the unit square: seeded with [A B], D and C are inserted on the
//	wrap-around edge and the tour closes as A → D → C → B → A, length 4.
//
//	go install github.com/katalvlaran/greedytsp/cmd/greedytsp@latest
package greedytsp
