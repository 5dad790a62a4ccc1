package patrol_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/patrol"
)

var sample = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}

// loopLines traps the guard in a 2×2 circuit through the start cell:
// (2,1)↑ (1,1)→ (1,2)↓ (2,2)← and back, four moves and four turns.
var loopLines = []string{
	".#..",
	"...#",
	"#^..",
	"..#.",
}

func mustGrid(t testing.TB, lines []string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines)
	require.NoError(t, err)
	return g
}

// randomGrid builds an n×n grid with the given obstruction density (percent).
func randomGrid(t testing.TB, rng *rand.Rand, n, density int) *grid.Grid {
	t.Helper()
	start := rng.Intn(n * n)
	lines := make([]string, n)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		sb.Reset()
		for c := 0; c < n; c++ {
			switch {
			case r*n+c == start:
				sb.WriteByte(grid.Heading(rng.Intn(grid.NumHeadings)).Glyph())
			case rng.Intn(100) < density:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		lines[r] = sb.String()
	}
	return mustGrid(t, lines)
}

//----------------------------------------------------------------------------//
// Step Tests
//----------------------------------------------------------------------------//

// TestStep covers the three branches of the transition rule.
func TestStep(t *testing.T) {
	g := mustGrid(t, []string{
		".#.",
		".^.",
		"...",
	})
	s := patrol.Begin(g)
	assert.Equal(t, patrol.State{Pos: grid.Position{Row: 1, Col: 1}, Heading: grid.Up}, s)

	// blocked ahead: turn in place
	next, exited, err := patrol.Step(g, s)
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, patrol.State{Pos: s.Pos, Heading: grid.Right}, next)

	// free ahead: move
	next, exited, err = patrol.Step(g, next)
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, patrol.State{Pos: grid.Position{Row: 1, Col: 2}, Heading: grid.Right}, next)

	// edge ahead: exit, state unchanged
	last, exited, err := patrol.Step(g, next)
	require.NoError(t, err)
	assert.True(t, exited)
	assert.Equal(t, next, last)
}

// TestStep_OverlayCountsAsBlocked ensures the overlay participates in the rule.
func TestStep_OverlayCountsAsBlocked(t *testing.T) {
	g := mustGrid(t, []string{"...", ".^.", "..."})
	require.NoError(t, g.PlaceOverlay(grid.Position{Row: 0, Col: 1}))

	next, _, err := patrol.Step(g, patrol.Begin(g))
	require.NoError(t, err)
	assert.Equal(t, grid.Right, next.Heading)
}

//----------------------------------------------------------------------------//
// Walk Tests
//----------------------------------------------------------------------------//

// TestWalk_Sample checks the 10×10 sample visits 41 distinct cells.
func TestWalk_Sample(t *testing.T) {
	g := mustGrid(t, sample)
	res, err := patrol.Walk(g)
	require.NoError(t, err)

	assert.Equal(t, 41, res.Visited)
	assert.Len(t, res.Cells(), 41)
	start, _ := g.Start()
	assert.True(t, res.Contains(start))
	assert.False(t, res.Contains(grid.Position{Row: 0, Col: 0}))
	assert.False(t, res.Contains(grid.Position{Row: -1, Col: 0}))
	assert.LessOrEqual(t, res.Steps, patrol.StateSpace(g))

	// the guard leaves through the bottom edge
	assert.Equal(t, grid.Down, res.Final.Heading)
	assert.Equal(t, g.Rows()-1, res.Final.Pos.Row)
}

// TestWalk_SingleCell exits immediately having visited only the start.
func TestWalk_SingleCell(t *testing.T) {
	res, err := patrol.Walk(mustGrid(t, []string{">"}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Visited)
	assert.Equal(t, 1, res.Steps)
}

// TestWalk_TurnsDoNotMove asserts a turn never changes Pos and never adds a cell.
func TestWalk_TurnsDoNotMove(t *testing.T) {
	g := mustGrid(t, sample)
	turns, moves := 0, 0
	cells := map[grid.Position]struct{}{}
	start, _ := g.Start()
	cells[start] = struct{}{}

	res, err := patrol.Walk(g, patrol.WithOnStep(func(from, to patrol.State) {
		if from.Heading != to.Heading {
			turns++
			assert.Equal(t, from.Pos, to.Pos, "turn moved the guard")
			assert.Equal(t, from.Heading.Turn(), to.Heading)
			return
		}
		moves++
		assert.NotEqual(t, from.Pos, to.Pos)
		cells[to.Pos] = struct{}{}
	}))
	require.NoError(t, err)

	assert.Positive(t, turns)
	assert.Equal(t, len(cells), res.Visited)
	assert.Equal(t, turns+moves+1, res.Steps, "the exit is the final transition")
}

// TestWalk_LoopingGridHitsStepLimit shows exhaustive mode refuses to spin forever.
func TestWalk_LoopingGridHitsStepLimit(t *testing.T) {
	_, err := patrol.Walk(mustGrid(t, loopLines))
	assert.ErrorIs(t, err, patrol.ErrStepLimit)
}

// TestWalk_Errors covers nil grids and invalid options.
func TestWalk_Errors(t *testing.T) {
	_, err := patrol.Walk(nil)
	assert.ErrorIs(t, err, patrol.ErrGridNil)

	_, err = patrol.Walk(mustGrid(t, sample), patrol.WithMaxSteps(-1))
	assert.ErrorIs(t, err, patrol.ErrOptionViolation)

	_, err = patrol.Walk(mustGrid(t, sample), patrol.WithMaxSteps(5))
	assert.ErrorIs(t, err, patrol.ErrStepLimit)
}

//----------------------------------------------------------------------------//
// Detect Tests
//----------------------------------------------------------------------------//

// TestDetectLoop_Loop finds the 8-transition circuit and reports its entry state.
func TestDetectLoop_Loop(t *testing.T) {
	g := mustGrid(t, loopLines)
	res, err := patrol.DetectLoop(g)
	require.NoError(t, err)

	assert.Equal(t, patrol.Loops, res.Verdict)
	assert.Equal(t, 8, res.Steps)
	assert.Equal(t, patrol.Begin(g), res.Final)
}

// TestDetectLoop_SameCellDifferentHeading ensures crossing a cell twice with
// different headings is not mistaken for a loop.
func TestDetectLoop_SameCellDifferentHeading(t *testing.T) {
	// The guard climbs column 2, loops round clockwise and crosses (3,2)
	// again heading left on its way out of the west edge.
	g := mustGrid(t, []string{
		"..#...",
		".....#",
		"......",
		"......",
		"..^.#.",
	})
	crossing := grid.Position{Row: 3, Col: 2}
	var headings []grid.Heading
	res, err := patrol.DetectLoop(g, patrol.WithOnStep(func(_, to patrol.State) {
		if to.Pos == crossing {
			headings = append(headings, to.Heading)
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, patrol.Exits, res.Verdict)
	assert.Equal(t, 15, res.Steps)
	assert.Equal(t, []grid.Heading{grid.Up, grid.Left}, headings)

	walked, err := patrol.Walk(g)
	require.NoError(t, err)
	assert.Equal(t, 11, walked.Visited)
}

// TestDetectLoop_SampleOverlay blocks a known loop cell of the sample.
func TestDetectLoop_SampleOverlay(t *testing.T) {
	g := mustGrid(t, sample)

	res, err := patrol.DetectLoop(g)
	require.NoError(t, err)
	assert.Equal(t, patrol.Exits, res.Verdict)

	err = g.WithOverlay(grid.Position{Row: 6, Col: 3}, func(in *grid.Grid) error {
		res, err := patrol.DetectLoop(in)
		if err != nil {
			return err
		}
		assert.Equal(t, patrol.Loops, res.Verdict)
		assert.LessOrEqual(t, res.Steps, patrol.StateSpace(in))
		return nil
	})
	require.NoError(t, err)
}

// TestDetectLoop_StepLimit makes the cap bite before the repeat is seen.
func TestDetectLoop_StepLimit(t *testing.T) {
	_, err := patrol.DetectLoop(mustGrid(t, loopLines), patrol.WithMaxSteps(3))
	assert.ErrorIs(t, err, patrol.ErrStepLimit)

	res, err := patrol.DetectLoop(mustGrid(t, loopLines), patrol.WithMaxSteps(8))
	require.NoError(t, err)
	assert.Equal(t, patrol.Loops, res.Verdict)
}

// TestDetectLoop_Errors covers nil grids and invalid options.
func TestDetectLoop_Errors(t *testing.T) {
	_, err := patrol.DetectLoop(nil)
	assert.ErrorIs(t, err, patrol.ErrGridNil)

	_, err = patrol.NewDetector(patrol.WithMaxSteps(-3))
	assert.ErrorIs(t, err, patrol.ErrOptionViolation)
}

// TestDetector_Reuse runs one Detector across grids of different sizes and
// compares with fresh detectors.
func TestDetector_Reuse(t *testing.T) {
	d, err := patrol.NewDetector()
	require.NoError(t, err)

	grids := []*grid.Grid{
		mustGrid(t, loopLines),
		mustGrid(t, sample),
		mustGrid(t, loopLines),
		mustGrid(t, []string{"^"}),
		mustGrid(t, sample),
	}
	for i, g := range grids {
		got, err := d.Run(g)
		require.NoError(t, err, i)
		want, err := patrol.DetectLoop(g)
		require.NoError(t, err, i)
		assert.Equal(t, want, got, "grid %d", i)
	}
}

//----------------------------------------------------------------------------//
// Cross-mode properties
//----------------------------------------------------------------------------//

// TestModes_Consistency checks, on random grids, that:
//   - Walk's visit count lies in [1, rows×cols];
//   - Walk terminating implies DetectLoop reports Exits, and a step-limit
//     failure implies Loops;
//   - both modes are idempotent;
//   - no run ever surfaces ErrOutOfRange.
func TestModes_Consistency(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(12), 5+rng.Intn(30))

		walked, walkErr := patrol.Walk(g)
		detected, err := patrol.DetectLoop(g)
		require.NoError(t, err)
		require.False(t, errors.Is(walkErr, grid.ErrOutOfRange))
		assert.LessOrEqual(t, detected.Steps, patrol.StateSpace(g))

		if walkErr != nil {
			require.ErrorIs(t, walkErr, patrol.ErrStepLimit)
			assert.Equal(t, patrol.Loops, detected.Verdict, "grid %d:\n%v", i, g)
			continue
		}
		assert.Equal(t, patrol.Exits, detected.Verdict, "grid %d:\n%v", i, g)
		assert.GreaterOrEqual(t, walked.Visited, 1)
		assert.LessOrEqual(t, walked.Visited, g.Size())
		assert.Equal(t, walked.Steps, detected.Steps, "both modes take the same path")

		again, err := patrol.Walk(g)
		require.NoError(t, err)
		assert.Equal(t, walked, again)
		detectedAgain, err := patrol.DetectLoop(g)
		require.NoError(t, err)
		assert.Equal(t, detected, detectedAgain)
	}
}
