// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// circle.go — Circle(n): n cities evenly spaced on the circle inscribed in
// the bounding box, city i at angle 2πi/n.
//
// Contract:
//   • n ≥ MinCircleCities (else ErrTooFewCities).
//   • WithJitter(σ>0) perturbs both coordinates and then requires an RNG.
//   • Without jitter the optimal tour is the polygon itself, which makes
//     Circle a handy quality fixture.
//
// Complexity: O(n) time, O(n) space.

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Circle returns n cities on the inscribed circle of the configured box.
func Circle(n int, opts ...Option) ([]geometry.City, error) {
	cfg := newConfig(opts...)
	if n < MinCircleCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCircle, n, MinCircleCities, ErrTooFewCities)
	}
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: jitter=%g: %w", MethodCircle, cfg.jitter, ErrNeedRandSource)
	}

	var (
		cx = cfg.minX + cfg.width()/2
		cy = cfg.minY + cfg.height()/2
		r  = math.Min(cfg.width(), cfg.height()) / 2
	)
	out := make([]geometry.City, n)

	var (
		i    int
		th   float64
		x, y float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		x = cx + r*math.Cos(th)
		y = cy + r*math.Sin(th)
		if cfg.jitter > 0 {
			x += cfg.rng.NormFloat64() * cfg.jitter
			y += cfg.rng.NormFloat64() * cfg.jitter
		}
		out[i] = geometry.NewCity(cfg.idFn(i), x, y)
	}

	return out, nil
}
