package obstruction

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/patrol"
)

// searcher encapsulates the state shared by one search.
type searcher struct {
	g     *grid.Grid
	opts  Options
	cands []grid.Position
	loops []bool // loops[i] reports cands[i]; each index written by one worker
}

// Count returns how many candidate cells trap the guard in a loop when
// blocked. See Positions.
func Count(g *grid.Grid, opts ...Option) (int, error) {
	ps, err := Positions(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(ps), nil
}

// Positions returns, in row-major order, every empty non-start cell whose
// obstruction makes the guard loop forever. The start cell is never offered
// to PlaceOverlay. The Grid must not carry an overlay.
// Returns ErrGridNil, ErrOptionViolation, a context error, or a wrapped
// patrol/grid error.
func Positions(g *grid.Grid, opts ...Option) ([]grid.Position, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if p, ok := g.Overlay(); ok {
		return nil, fmt.Errorf("obstruction: %w at %v", grid.ErrOverlayActive, p)
	}

	began := time.Now()
	s := &searcher{g: g, opts: o}
	if err := s.collectCandidates(); err != nil {
		return nil, err
	}
	s.loops = make([]bool, len(s.cands))

	var err error
	if o.Workers <= 1 {
		err = s.runSerial()
	} else {
		err = s.runParallel()
	}
	if err != nil {
		return nil, err
	}

	out := make([]grid.Position, 0)
	for i, loop := range s.loops {
		if loop {
			out = append(out, s.cands[i])
		}
	}

	zerolog.Ctx(o.Ctx).Debug().
		Int("candidates", len(s.cands)).
		Int("loops", len(out)).
		Int("workers", o.Workers).
		Bool("path_pruning", o.PathPruning).
		Dur("elapsed", time.Since(began)).
		Msg("obstruction search finished")

	return out, nil
}

// collectCandidates lists the cells to test, in row-major order.
func (s *searcher) collectCandidates() error {
	start, _ := s.g.Start()
	keep := func(p grid.Position) bool {
		return p != start && !s.g.IsObstruction(p)
	}

	if s.opts.PathPruning {
		walked, err := patrol.Walk(s.g, patrol.WithMaxSteps(s.opts.MaxSteps))
		if err != nil {
			return fmt.Errorf("obstruction: path pruning: %w", err)
		}
		for _, p := range walked.Cells() {
			if keep(p) {
				s.cands = append(s.cands, p)
			}
		}
		return nil
	}

	s.cands = make([]grid.Position, 0, s.g.Size())
	for i := 0; i < s.g.Size(); i++ {
		if p := s.g.Coordinate(i); keep(p) {
			s.cands = append(s.cands, p)
		}
	}
	return nil
}

// runSerial evaluates every candidate on the caller's Grid.
func (s *searcher) runSerial() error {
	d, err := patrol.NewDetector(patrol.WithMaxSteps(s.opts.MaxSteps))
	if err != nil {
		return err
	}
	for i := range s.cands {
		if err := s.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("obstruction: %w", err)
		}
		if err := s.evaluate(s.g, d, i); err != nil {
			return err
		}
	}
	return nil
}

// runParallel stripes candidates over workers, each with its own fork.
func (s *searcher) runParallel() error {
	eg, ctx := errgroup.WithContext(s.opts.Ctx)
	workers := s.opts.Workers
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			fork := s.g.Fork()
			d, err := patrol.NewDetector(patrol.WithMaxSteps(s.opts.MaxSteps))
			if err != nil {
				return err
			}
			for i := w; i < len(s.cands); i += workers {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("obstruction: %w", err)
				}
				if err := s.evaluate(fork, d, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

// evaluate blocks cands[i] on g for the duration of one cycle-aware run.
func (s *searcher) evaluate(g *grid.Grid, d *patrol.Detector, i int) error {
	p := s.cands[i]
	err := g.WithOverlay(p, func(in *grid.Grid) error {
		res, err := d.Run(in)
		if err != nil {
			return err
		}
		s.loops[i] = res.Verdict == patrol.Loops
		s.opts.OnCandidate(p, res.Verdict)
		return nil
	})
	if err != nil {
		return fmt.Errorf("obstruction: candidate %v: %w", p, err)
	}
	return nil
}
