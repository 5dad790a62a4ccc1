// Package grid models the bounded terrain a guard patrols: a rectangle of
// empty cells and permanent obstructions, a single start marker with its
// heading, and at most one temporary obstruction overlay.
//
// What:
//
//   - Grid is built once from row strings (FromLines) or coordinates (New).
//   - Base terrain is immutable; Fork shares it between independent Grids.
//   - A single overlay cell can be placed and cleared, or scoped with WithOverlay.
//   - Heading encodes the fixed turn order Up → Right → Down → Left → Up.
//
// Why:
//
//   - Loop searches evaluate thousands of "what if this cell were blocked"
//     variants; an overlay avoids copying the terrain per variant.
//   - Forks let concurrent workers probe their own overlay over shared terrain.
//
// Complexity:
//
//   - FromLines, New:                 O(W×H), Memory: O(W×H).
//   - IsInside, IsBlocked, overlays:  O(1).
//   - Fork:                           O(1), shares terrain.
//   - String:                         O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMalformedGrid: unknown glyph, or start marker count other than one.
//   - ErrOutOfRange: a query or placement outside the grid bounds.
//   - ErrInvalidPlacement: overlay requested on the start cell.
//   - ErrOverlayActive: overlay requested while another one is placed.
package grid
