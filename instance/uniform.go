// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// uniform.go — Uniform(n): cities drawn uniformly over the bounding box.
//
// Contract:
//   • n ≥ MinUniformCities (else ErrTooFewCities).
//   • Requires an RNG (else ErrNeedRandSource).
//   • Draw order: x then y per city, cities in index order.
//
// Complexity: O(n) time, O(n) space.

package instance

import (
	"fmt"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Uniform returns n cities with coordinates ∼U over the configured box.
func Uniform(n int, opts ...Option) ([]geometry.City, error) {
	cfg := newConfig(opts...)
	if n < MinUniformCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodUniform, n, MinUniformCities, ErrTooFewCities)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodUniform, ErrNeedRandSource)
	}

	out := make([]geometry.City, n)

	var (
		i    int
		x, y float64
	)
	for i = 0; i < n; i++ {
		x = cfg.minX + cfg.rng.Float64()*cfg.width()
		y = cfg.minY + cfg.rng.Float64()*cfg.height()
		out[i] = geometry.NewCity(cfg.idFn(i), x, y)
	}

	return out, nil
}
