package obstruction

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/patrol"
)

// Sentinel errors for obstruction searches.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("obstruction: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obstruction: invalid option supplied")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation between candidates. It also carries the
	// zerolog logger used for the summary line.
	Ctx context.Context

	// Workers is the number of concurrent evaluators. 1 searches serially
	// on the caller's Grid.
	Workers int

	// PathPruning limits candidates to cells on the unobstructed walk.
	PathPruning bool

	// MaxSteps is forwarded to patrol.WithMaxSteps.
	MaxSteps int

	// OnCandidate is called with every evaluated candidate and its verdict.
	// With Workers > 1 it runs on worker goroutines.
	OnCandidate func(p grid.Position, v patrol.Verdict)

	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - a single worker
//   - full candidate scan
//   - the patrol default step cap
//   - a no-op OnCandidate hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Workers:     1,
		PathPruning: false,
		MaxSteps:    0,
		OnCandidate: func(grid.Position, patrol.Verdict) {},
	}
}

// WithContext sets a custom context for cancellation and logging.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent evaluators.
//
//	n > 0: exactly n workers
//	n == 0: one worker per GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithPathPruning enables or disables candidate pruning to the walked path.
func WithPathPruning(on bool) Option {
	return func(o *Options) {
		o.PathPruning = on
	}
}

// WithMaxSteps caps every simulation; see patrol.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnCandidate registers a per-candidate callback.
func WithOnCandidate(fn func(p grid.Position, v patrol.Verdict)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}
