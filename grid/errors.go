package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMalformedGrid indicates an unknown glyph or a start marker count other than one.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrOutOfRange indicates a position outside the grid bounds.
	ErrOutOfRange = errors.New("grid: position out of range")
	// ErrInvalidPlacement indicates an overlay requested on the start cell.
	ErrInvalidPlacement = errors.New("grid: overlay cannot be placed on the start cell")
	// ErrOverlayActive indicates an overlay is already placed.
	ErrOverlayActive = errors.New("grid: overlay already active")
)
