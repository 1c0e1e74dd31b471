// Package tsp — functional options for Engine and Solve.
//
// Contract:
//   - Options are functional (type Option func(*engineConfig)).
//   - Option constructors panic on meaningless inputs (nil logger/observer,
//     negative start). The engine itself never panics on user input.
//   - Later options override earlier ones.
package tsp

import "go.uber.org/zap"

// Option customizes an Engine before seeding.
type Option func(*engineConfig)

// Observer receives every insertion step, in order, on the engine goroutine.
type Observer func(Step)

// engineConfig aggregates the engine knobs. Defaults are deterministic:
//   - start           = 0 (first available city)
//   - logger          = zap.NewNop()
//   - observer        = nil
//   - checkInvariants = false (a final permutation check always runs)
type engineConfig struct {
	start           int
	logger          *zap.Logger
	observer        Observer
	checkInvariants bool
}

// newEngineConfig applies opts on top of the defaults.
//
// Complexity: O(len(opts)).
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		start:  0,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStart selects the anchor city by input index. Panics if start < 0;
// an index past the end is reported as ErrStartOutOfRange at seeding time.
func WithStart(start int) Option {
	if start < 0 {
		panic("tsp: WithStart(start<0)")
	}
	return func(c *engineConfig) {
		c.start = start
	}
}

// WithLogger attaches a zap logger. Seeding and every insertion are logged
// at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("tsp: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithObserver registers a per-step callback (progress display, tracing,
// tests). Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("tsp: WithObserver(nil)")
	}
	return func(c *engineConfig) {
		c.observer = fn
	}
}

// WithInvariantChecks enables a full disjointness/coverage check after every
// step. It costs O(n) per step, which is small next to the O(n²) scan.
func WithInvariantChecks(on bool) Option {
	return func(c *engineConfig) {
		c.checkInvariants = on
	}
}
