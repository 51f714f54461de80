// SPDX-License-Identifier: MIT

package multipass

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/cellauto/automaton"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("multipass: invalid option supplied")

// Option configures Find via functional arguments.
type Option func(*Options)

// Options holds the parameters of a multipass search.
type Options struct {
	// Ctx allows cancellation between passes.
	Ctx context.Context

	// Logger receives one debug record per extracted path.
	Logger *slog.Logger

	// MinLength is the minimum number of items an accepted path must have.
	MinLength int

	// MinState is the minimum start state an accepted path must reach.
	MinState float64

	// MaxPasses bounds the number of extracted paths; 0 disables the bound.
	MaxPasses int

	// Automaton options forwarded to every run.
	Automaton []automaton.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - slog.Default()
//   - MinLength 1, MinState -Inf, no pass limit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.Default(),
		MinLength: 1,
		MinState:  math.Inf(-1),
	}
}

// WithContext sets a cancellation context. A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("WithContext: nil context: %w", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithLogger sets the logger. A nil logger is an option violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("WithLogger: nil logger: %w", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithMinLength rejects paths with fewer than n items (n ≥ 1).
func WithMinLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("WithMinLength(%d): must be ≥ 1: %w", n, ErrOptionViolation)
			return
		}
		o.MinLength = n
	}
}

// WithMinState rejects paths whose start state is below s. NaN is an option violation.
func WithMinState(s float64) Option {
	return func(o *Options) {
		if math.IsNaN(s) {
			o.err = fmt.Errorf("WithMinState: NaN: %w", ErrOptionViolation)
			return
		}
		o.MinState = s
	}
}

// WithMaxPasses stops after k extracted paths; 0 means unlimited.
func WithMaxPasses(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("WithMaxPasses(%d): must be ≥ 0: %w", k, ErrOptionViolation)
			return
		}
		o.MaxPasses = k
	}
}

// WithAutomatonOptions forwards opts to every automaton run.
func WithAutomatonOptions(opts ...automaton.Option) Option {
	return func(o *Options) {
		o.Automaton = append(o.Automaton, opts...)
	}
}
