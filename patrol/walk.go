package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// WalkResult holds the outcome of an exhaustive run:
//   - Visited: number of distinct cells occupied, start included.
//   - Steps: transitions applied, turns and the final exit included.
//   - Final: the State from which the guard stepped off the grid.
type WalkResult struct {
	Visited int
	Steps   int
	Final   State

	cols int
	seen []bool // row-major
}

// Contains reports whether the guard occupied p during the walk.
func (r *WalkResult) Contains(p grid.Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Col >= r.cols {
		return false
	}
	i := p.Row*r.cols + p.Col
	return i < len(r.seen) && r.seen[i]
}

// Cells returns the visited cells in row-major order.
func (r *WalkResult) Cells() []grid.Position {
	out := make([]grid.Position, 0, r.Visited)
	for i, ok := range r.seen {
		if ok {
			out = append(out, grid.Position{Row: i / r.cols, Col: i % r.cols})
		}
	}
	return out
}

// Walk runs the guard from the start marker until it leaves g, recording
// each position before every transition. Turns keep the position, so they
// never add a cell.
//
// Walk performs no cycle check; a grid on which the guard never leaves
// fails with ErrStepLimit once the transition cap is spent.
// Returns ErrGridNil, ErrOptionViolation, ErrStepLimit, or a wrapped grid error.
func Walk(g *grid.Grid, opts ...Option) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	limit := o.stepLimit(g)
	res := &WalkResult{
		cols: g.Cols(),
		seen: make([]bool, g.Size()),
	}
	s := Begin(g)
	for {
		if i := g.Index(s.Pos); !res.seen[i] {
			res.seen[i] = true
			res.Visited++
		}
		if res.Steps >= limit {
			return nil, fmt.Errorf("patrol: Walk at %v after %d steps: %w", s, res.Steps, ErrStepLimit)
		}
		next, exited, err := Step(g, s)
		if err != nil {
			return nil, fmt.Errorf("patrol: Walk at %v: %w", s, err)
		}
		res.Steps++
		if exited {
			res.Final = s
			return res, nil
		}
		o.OnStep(s, next)
		s = next
	}
}
