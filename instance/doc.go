// Package instance generates deterministic synthetic city sets for the
// closest-edge insertion solver: benchmarks, CLI fixtures and tests.
//
// The package offers the following components:
//
//   - Generators (each returns []geometry.City in index order):
//     – Uniform(n):       cities drawn ∼U over the bounding box.
//     – Circle(n):        cities evenly spaced on the inscribed circle.
//     – Grid(rows, cols): cities on a regular lattice spanning the box.
//     – Clustered(n, k):  cities scattered ∼N around k uniform centres.
//   - Configuration primitives (functional options):
//     – WithSeed / WithRand:   RNG for stochastic generators.
//     – WithIDScheme & co.:    city labelling (decimal, TSPLIB 1-based, prefix, Excel).
//     – WithBounds:            bounding box, default [0,100]×[0,100].
//     – WithJitter, WithSpread: Gaussian noise for Circle/Grid and Clustered.
//
// Guarantees:
//
//   - Determinism: the same options and seed yield identical cities.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime parameter errors are sentinels wrapped with the generator name.
//   - Generators never panic at runtime.
package instance
