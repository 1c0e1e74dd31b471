// SPDX-License-Identifier: MIT
// Package: greedytsp/instance
//
// errors.go — sentinel errors for the instance package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators attach context with "%s: ...: %w" (method name first).
//   • Option constructors panic on meaningless values; generators never panic.

package instance

import "errors"

// ErrTooFewCities indicates a size parameter (n, rows·cols, k) below the
// generator's minimum.
var ErrTooFewCities = errors.New("instance: too few cities")

// ErrInvalidParameter indicates a non-size parameter outside its domain,
// e.g. more clusters than cities.
var ErrInvalidParameter = errors.New("instance: invalid parameter")

// ErrNeedRandSource indicates a stochastic generator ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("instance: rng is required")
