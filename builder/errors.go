// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Chain: n=0 < min=1: ...").
//   • Runtime code never panics; option constructors do (see options.go).

package builder

import "errors"

// ErrTooFewItems indicates a size parameter below the constructor's minimum.
var ErrTooFewItems = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, for example a
// nil Constructor passed to Build or a neighborhood insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
