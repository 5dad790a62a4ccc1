// Package patrol defines guard states, run verdicts, results and options.
package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Sentinel errors for patrol runs.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")

	// ErrStepLimit is returned when a run exhausts its transition budget
	// without exiting or repeating a state.
	ErrStepLimit = errors.New("patrol: step limit exceeded")
)

// State is the guard's position and heading. It is a comparable value;
// every transition produces a new State.
type State struct {
	Pos     grid.Position
	Heading grid.Heading
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Heading)
}

// Verdict is the outcome of a cycle-aware run.
type Verdict uint8

const (
	// Exits means the guard stepped off the grid.
	Exits Verdict = iota
	// Loops means the guard repeated a State and will patrol forever.
	Loops
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Exits:
		return "exits"
	case Loops:
		return "loops"
	}
	return fmt.Sprintf("Verdict(%d)", uint8(v))
}

// Result holds the outcome of a cycle-aware run:
//   - Verdict: Exits or Loops.
//   - Steps: transitions applied, turns included.
//   - Final: the last State; for Loops it is the first repeated State.
type Result struct {
	Verdict Verdict
	Steps   int
	Final   State
}

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a run.
type Options struct {
	// MaxSteps caps the number of transitions. 0 selects rows×cols×4+1.
	MaxSteps int

	// OnStep is called after every non-exiting transition.
	OnStep func(from, to State)

	err error
}

// DefaultOptions returns Options with the derived step cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		OnStep:   func(State, State) {},
	}
}

// WithMaxSteps caps the transitions of a run.
//
//	n > 0: at most n transitions
//	n == 0: default cap rows×cols×4+1
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a callback run after each transition.
func WithOnStep(fn func(from, to State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// stepLimit resolves the transition cap for g.
func (o Options) stepLimit(g *grid.Grid) int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return StateSpace(g) + 1
}

// StateSpace returns the number of distinct States on g: rows×cols×4.
func StateSpace(g *grid.Grid) int {
	return g.Size() * grid.NumHeadings
}
