// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// clustered.go — Clustered(n, k): k centres drawn uniformly over the box,
// then city i is drawn ∼N(centre[i mod k], spread²) on each axis.
//
// Contract:
//   • n ≥ MinClusteredCities (else ErrTooFewCities).
//   • MinClusters ≤ k ≤ n (else ErrInvalidParameter).
//   • Requires an RNG (else ErrNeedRandSource).
//   • Cities may fall outside the box; they are not clamped.
//
// Complexity: O(n + k) time, O(n + k) space.

package instance

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Clustered returns n cities grouped around k random centres.
func Clustered(n, k int, opts ...Option) ([]geometry.City, error) {
	cfg := newConfig(opts...)
	if n < MinClusteredCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodClustered, n, MinClusteredCities, ErrTooFewCities)
	}
	if k < MinClusters || k > n {
		return nil, fmt.Errorf("%s: k=%d not in [%d,%d]: %w", MethodClustered, k, MinClusters, n, ErrInvalidParameter)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodClustered, ErrNeedRandSource)
	}

	centres := make([]r2.Vec, k)

	var i int
	for i = 0; i < k; i++ {
		centres[i] = r2.Vec{
			X: cfg.minX + cfg.rng.Float64()*cfg.width(),
			Y: cfg.minY + cfg.rng.Float64()*cfg.height(),
		}
	}

	out := make([]geometry.City, n)

	var (
		c   r2.Vec
		off r2.Vec
	)
	for i = 0; i < n; i++ {
		c = centres[i%k]
		off = r2.Vec{X: cfg.rng.NormFloat64(), Y: cfg.rng.NormFloat64()}
		c = r2.Add(c, r2.Scale(cfg.spread, off))
		out[i] = geometry.NewCity(cfg.idFn(i), c.X, c.Y)
	}

	return out, nil
}
