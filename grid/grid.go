// Package grid provides the terrain a guard patrols. It supports:
//
//   - Construction from row strings or from explicit coordinates
//   - Bounds and occupancy queries
//   - A single exclusive overlay obstruction with scoped release
//   - Cheap forks that share the immutable base terrain
package grid

import (
	"fmt"
	"strings"
)

// FromLines constructs a Grid from a non-empty list of equal-length rows.
// Each character is '.', '#', or one of the start glyphs '^', '>', 'v', '<';
// exactly one start glyph must be present.
// Returns ErrEmptyGrid, ErrNonRectangular, or a wrapped ErrMalformedGrid.
// Algorithmic complexity: O(W×H) time and memory.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	for _, row := range lines {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		rows:    h,
		cols:    w,
		blocked: make([]bool, h*w),
		overlay: noOverlay,
	}
	starts := 0
	for r, row := range lines {
		for c := 0; c < w; c++ {
			ch := row[c]
			switch ch {
			case GlyphEmpty:
			case GlyphObstruction:
				g.blocked[g.index(r, c)] = true
			default:
				hd, ok := HeadingFromGlyph(ch)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected glyph %q at (%d,%d)", ErrMalformedGrid, ch, r, c)
				}
				starts++
				g.start = Position{Row: r, Col: c}
				g.startHeading = hd
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d start markers, want 1", ErrMalformedGrid, starts)
	}

	return g, nil
}

// New constructs a rows×cols Grid with the given permanent obstructions and
// start marker. Duplicate obstructions collapse. Returns ErrEmptyGrid for
// non-positive dimensions, ErrOutOfRange for positions outside the bounds,
// and a wrapped ErrMalformedGrid if the start cell is also an obstruction.
func New(rows, cols int, obstructions []Position, start Position, heading Heading) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if heading >= NumHeadings {
		return nil, fmt.Errorf("%w: invalid heading %d", ErrMalformedGrid, heading)
	}
	g := &Grid{
		rows:         rows,
		cols:         cols,
		blocked:      make([]bool, rows*cols),
		start:        start,
		startHeading: heading,
		overlay:      noOverlay,
	}
	if !g.IsInside(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrOutOfRange)
	}
	for _, p := range obstructions {
		if !g.IsInside(p) {
			return nil, fmt.Errorf("obstruction %v: %w", p, ErrOutOfRange)
		}
		if p == start {
			return nil, fmt.Errorf("%w: obstruction on start cell %v", ErrMalformedGrid, p)
		}
		g.blocked[g.Index(p)] = true
	}

	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the start cell and heading recorded at construction.
func (g *Grid) Start() (Position, Heading) {
	return g.start, g.startHeading
}

// IsInside reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) IsInside(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsBlocked reports whether p holds a permanent obstruction or the current
// overlay. Callers check IsInside first; an outside p yields ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) IsBlocked(p Position) (bool, error) {
	if !g.IsInside(p) {
		return false, fmt.Errorf("IsBlocked%v: %w", p, ErrOutOfRange)
	}
	i := g.Index(p)
	return g.blocked[i] || i == g.overlay, nil
}

// IsObstruction reports whether p holds a permanent obstruction, ignoring
// the overlay. Outside positions report false.
func (g *Grid) IsObstruction(p Position) bool {
	return g.IsInside(p) && g.blocked[g.Index(p)]
}

// PlaceOverlay blocks p until ClearOverlay is called.
// Returns ErrOutOfRange, ErrInvalidPlacement for the start cell, or
// ErrOverlayActive if another overlay is in place.
func (g *Grid) PlaceOverlay(p Position) error {
	if !g.IsInside(p) {
		return fmt.Errorf("PlaceOverlay%v: %w", p, ErrOutOfRange)
	}
	if p == g.start {
		return fmt.Errorf("PlaceOverlay%v: %w", p, ErrInvalidPlacement)
	}
	if g.overlay != noOverlay {
		return fmt.Errorf("PlaceOverlay%v: %w at %v", p, ErrOverlayActive, g.Coordinate(g.overlay))
	}
	g.overlay = g.Index(p)
	return nil
}

// ClearOverlay removes the overlay, if any.
func (g *Grid) ClearOverlay() {
	g.overlay = noOverlay
}

// Overlay returns the overlay position and whether one is placed.
func (g *Grid) Overlay() (Position, bool) {
	if g.overlay == noOverlay {
		return Position{}, false
	}
	return g.Coordinate(g.overlay), true
}

// WithOverlay places an overlay at p, runs fn, and clears the overlay
// again regardless of how fn returns.
func (g *Grid) WithOverlay(p Position, fn func(*Grid) error) error {
	if err := g.PlaceOverlay(p); err != nil {
		return err
	}
	defer g.ClearOverlay()

	return fn(g)
}

// Fork returns an independent Grid sharing the base terrain of g, with no
// overlay. Forks may be used concurrently with each other and with g.
// Complexity: O(1).
func (g *Grid) Fork() *Grid {
	return &Grid{
		rows:         g.rows,
		cols:         g.cols,
		blocked:      g.blocked,
		start:        g.start,
		startHeading: g.startHeading,
		overlay:      noOverlay,
	}
}

// Index maps p to a row‑major index: Row*Cols + Col.
// p must be inside the grid.
func (g *Grid) Index(p Position) int {
	return g.index(p.Row, p.Col)
}

func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row‑major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Lines renders the grid as row strings: '.', '#', the start glyph, and
// 'O' for the overlay.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := g.index(r, c)
			switch {
			case i == g.overlay:
				buf[c] = GlyphOverlay
			case g.blocked[i]:
				buf[c] = GlyphObstruction
			case r == g.start.Row && c == g.start.Col:
				buf[c] = g.startHeading.Glyph()
			default:
				buf[c] = GlyphEmpty
			}
		}
		out[r] = string(buf)
	}
	return out
}

// String implements fmt.Stringer, joining Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
