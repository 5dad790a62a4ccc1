package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Detector runs cycle-aware simulations. Its state table is sized on first
// use and reused by later runs, so repeated runs allocate nothing.
//
// A Detector is not safe for concurrent use; give each goroutine its own.
type Detector struct {
	opts  Options
	stamp []uint32 // per State key: epoch of the run that last saw it
	epoch uint32
}

// NewDetector returns a Detector configured by opts.
// Returns ErrOptionViolation for invalid options.
func NewDetector(opts ...Option) (*Detector, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Detector{opts: o}, nil
}

// Run simulates the guard on g from the start marker, recording the full
// State before every transition. It reports Loops on the first repeated
// State and Exits once the guard leaves g.
// Returns ErrGridNil, ErrStepLimit, or a wrapped grid error.
func (d *Detector) Run(g *grid.Grid) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	d.reset(StateSpace(g))

	limit := d.opts.stepLimit(g)
	s := Begin(g)
	steps := 0
	for {
		k := g.Index(s.Pos)*grid.NumHeadings + int(s.Heading)
		if d.stamp[k] == d.epoch {
			return Result{Verdict: Loops, Steps: steps, Final: s}, nil
		}
		d.stamp[k] = d.epoch

		if steps >= limit {
			return Result{}, fmt.Errorf("patrol: Detect at %v after %d steps: %w", s, steps, ErrStepLimit)
		}
		next, exited, err := Step(g, s)
		if err != nil {
			return Result{}, fmt.Errorf("patrol: Detect at %v: %w", s, err)
		}
		steps++
		if exited {
			return Result{Verdict: Exits, Steps: steps, Final: s}, nil
		}
		d.opts.OnStep(s, next)
		s = next
	}
}

// reset starts a new epoch over at least n state slots.
func (d *Detector) reset(n int) {
	if len(d.stamp) < n {
		d.stamp = make([]uint32, n)
		d.epoch = 0
	}
	d.epoch++
	if d.epoch == 0 {
		// wrapped: stale stamps could alias the new epoch
		clear(d.stamp)
		d.epoch = 1
	}
}

// DetectLoop is the one-shot form of NewDetector(opts...).Run(g).
func DetectLoop(g *grid.Grid, opts ...Option) (Result, error) {
	d, err := NewDetector(opts...)
	if err != nil {
		return Result{}, err
	}
	return d.Run(g)
}
