// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn ("0","1","2",...)
//   • rng     = nil (deterministic generators only, unless seeded)
//   • bounds  = [0,100]×[0,100]
//   • jitter  = 0 (Circle/Grid exact)
//   • spread  = 5 (Clustered σ)

package instance

import "math/rand"

// config aggregates all knobs used by generators. It is passed by value.
type config struct {
	idFn   IDFn
	rng    *rand.Rand
	minX   float64
	minY   float64
	maxX   float64
	maxY   float64
	jitter float64
	spread float64
}

// newConfig applies options in order; later options override earlier ones.
//
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   DefaultIDFn,
		minX:   DefaultMinX,
		minY:   DefaultMinY,
		maxX:   DefaultMaxX,
		maxY:   DefaultMaxY,
		spread: DefaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// width and height of the bounding box.
func (c config) width() float64  { return c.maxX - c.minX }
func (c config) height() float64 { return c.maxY - c.minY }
