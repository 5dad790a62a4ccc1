// Package patrol provides the guard transition rule and the two run modes
// that share it.
package patrol

import (
	"github.com/katalvlaran/patrol/grid"
)

// Begin returns the guard's initial State from the grid's start marker.
func Begin(g *grid.Grid) State {
	p, h := g.Start()
	return State{Pos: p, Heading: h}
}

// Step applies the transition rule once to s:
//  1. ahead = s.Pos one cell towards s.Heading.
//  2. ahead outside the grid → exited=true, s returned unchanged.
//  3. ahead blocked → same Pos, Heading turned right.
//  4. otherwise → Pos=ahead, Heading unchanged.
//
// IsBlocked is only consulted for in-bounds cells, so a grid error here
// indicates a broken grid.
// Complexity: O(1).
func Step(g *grid.Grid, s State) (next State, exited bool, err error) {
	ahead := s.Pos.Step(s.Heading)
	if !g.IsInside(ahead) {
		return s, true, nil
	}
	blocked, err := g.IsBlocked(ahead)
	if err != nil {
		return s, false, err
	}
	if blocked {
		return State{Pos: s.Pos, Heading: s.Heading.Turn()}, false, nil
	}
	return State{Pos: ahead, Heading: s.Heading}, false, nil
}
