// Package check defines the checker options and sentinel errors.
// See doc.go for the package overview.
package check

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNilHistory is returned when the history is nil.
	ErrNilHistory = errors.New("check: history is nil")

	// ErrNilSpecification is returned when the specification is nil.
	ErrNilSpecification = errors.New("check: specification is nil")
)

// Option configures a checker run. Use with CC/CM/CCv(h, spec, opts...).
type Option func(*Options)

// Options holds configurable parameters of a checker run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to
	// context.Background(). Checked between refinements - timeouts are
	// policy, not semantics.
	Ctx context.Context

	// Logger receives structured debug events: refinement index,
	// focused operation, witnessing serialization. Defaults to the
	// no-op logger; events have no semantic effect.
	Logger zerolog.Logger

	// Parallelism bounds the number of refinements examined
	// concurrently. Values below 2 select the sequential search.
	// Refinements are independent, so the verdict is unaffected.
	Parallelism int
}

// DefaultOptions returns the default run settings: Background
// context, no-op logger, sequential search.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zerolog.Nop(),
		Parallelism: 1,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger returns an Option that installs a structured logger for
// progress events.
func WithLogger(lg zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = lg
	}
}

// WithParallelism returns an Option that examines up to n refinements
// concurrently. Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Parallelism = n
		}
	}
}
