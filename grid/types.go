// Package grid defines headings, positions and the Grid type
// for the grid subpackage of github.com/katalvlaran/patrol.
package grid

import "fmt"

// Terrain glyphs accepted by FromLines and produced by String.
const (
	GlyphEmpty       = '.'
	GlyphObstruction = '#'
	GlyphOverlay     = 'O'
)

// Heading is one of the four cardinal directions a guard can face.
// The numeric order is the turn order; Turn relies on it.
type Heading uint8

const (
	// Up faces decreasing row numbers.
	Up Heading = iota
	// Right faces increasing column numbers.
	Right
	// Down faces increasing row numbers.
	Down
	// Left faces decreasing column numbers.
	Left

	// NumHeadings is the size of the heading cycle.
	NumHeadings = 4
)

// deltas is indexed by Heading: {dRow, dCol}.
var deltas = [NumHeadings][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

var glyphs = [NumHeadings]byte{'^', '>', 'v', '<'}

// Turn returns the heading after a quarter turn clockwise.
func (h Heading) Turn() Heading {
	return (h + 1) % NumHeadings
}

// Delta returns the unit step (dRow, dCol) for h.
func (h Heading) Delta() (dRow, dCol int) {
	d := deltas[h%NumHeadings]
	return d[0], d[1]
}

// Glyph returns the start-marker character for h.
func (h Heading) Glyph() byte {
	return glyphs[h%NumHeadings]
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// HeadingFromGlyph maps '^', '>', 'v', '<' to a Heading.
func HeadingFromGlyph(b byte) (Heading, bool) {
	for h, g := range glyphs {
		if g == b {
			return Heading(h), true
		}
	}
	return 0, false
}

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one cell towards h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is the patrol terrain. Width and height, the obstruction table and the
// start marker are fixed at construction and shared by forks; only the
// overlay slot is mutable.
//
// A Grid must not be mutated from more than one goroutine. Use Fork to give
// each goroutine its own overlay.
type Grid struct {
	rows, cols   int
	blocked      []bool // row-major, read-only after construction
	start        Position
	startHeading Heading
	overlay      int // row-major index, or noOverlay
}

const noOverlay = -1
