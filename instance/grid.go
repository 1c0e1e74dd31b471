// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// grid.go — Grid(rows, cols): a regular lattice spanning the bounding box.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ MinGridCities (else ErrTooFewCities).
//   • Cities are emitted row-major: index = r·cols + c.
//   • A single row or column is centred on the box.
//   • WithJitter(σ>0) perturbs coordinates and then requires an RNG.
//
// Complexity: O(rows·cols) time and space.

package instance

import (
	"fmt"

	"github.com/katalvlaran/greedytsp/geometry"
)

// Grid returns rows·cols lattice cities.
func Grid(rows, cols int, opts ...Option) ([]geometry.City, error) {
	cfg := newConfig(opts...)
	if rows < 1 || cols < 1 || rows*cols < MinGridCities {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", MethodGrid, rows, cols, ErrTooFewCities)
	}
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: jitter=%g: %w", MethodGrid, cfg.jitter, ErrNeedRandSource)
	}

	out := make([]geometry.City, 0, rows*cols)

	var (
		r, c int
		x, y float64
	)
	for r = 0; r < rows; r++ {
		y = latticeCoord(cfg.minY, cfg.height(), r, rows)
		for c = 0; c < cols; c++ {
			x = latticeCoord(cfg.minX, cfg.width(), c, cols)
			if cfg.jitter > 0 {
				out = append(out, geometry.NewCity(cfg.idFn(len(out)),
					x+cfg.rng.NormFloat64()*cfg.jitter,
					y+cfg.rng.NormFloat64()*cfg.jitter))
				continue
			}
			out = append(out, geometry.NewCity(cfg.idFn(len(out)), x, y))
		}
	}

	return out, nil
}

// latticeCoord places index i of count along [lo, lo+span]; a single point
// sits in the middle.
func latticeCoord(lo, span float64, i, count int) float64 {
	if count == 1 {
		return lo + span/2
	}

	return lo + span*float64(i)/float64(count-1)
}
