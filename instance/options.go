// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// options.go — functional options for the instance generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package instance

import "math/rand"

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// WithIDScheme sets the city label generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("instance: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the bounding box. Panics unless minX < maxX and minY < maxY.
func WithBounds(minX, minY, maxX, maxY float64) Option {
	if !(minX < maxX) || !(minY < maxY) {
		panic("instance: WithBounds(empty box)")
	}
	return func(c *config) {
		c.minX, c.minY, c.maxX, c.maxY = minX, minY, maxX, maxY
	}
}

// WithJitter adds N(0, sigma²) noise to Circle and Grid coordinates.
// Panics if sigma < 0. A positive sigma requires an RNG.
func WithJitter(sigma float64) Option {
	if sigma < 0 {
		panic("instance: WithJitter(sigma<0)")
	}
	return func(c *config) {
		c.jitter = sigma
	}
}

// WithSpread sets the Gaussian σ of Clustered around each centre.
// Panics if sigma <= 0.
func WithSpread(sigma float64) Option {
	if sigma <= 0 {
		panic("instance: WithSpread(sigma<=0)")
	}
	return func(c *config) {
		c.spread = sigma
	}
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix), e.g. "c0","c1",...
func WithPrefixIDs(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithTSPLIBIDs sets the ID scheme to TSPLIBIDFn ("1","2",...).
func WithTSPLIBIDs() Option {
	return WithIDScheme(TSPLIBIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn ("A".."Z","AA",...).
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}
