// Package patrol is a small toolkit for the guard patrol puzzle: a guard
// walks a rectangular grid, turning right at every obstruction, until it
// leaves the grid or repeats itself forever.
//
// Under the hood, everything is organized under three packages:
//
//	grid/        — terrain, headings, positions and the single overlay obstruction
//	patrol/      — the transition rule, exhaustive Walk and cycle-aware Detector
//	obstruction/ — the search for cells whose obstruction traps the guard
//
// The patrol binary (cmd/patrol) reads a puzzle file and prints both answers:
//
//	go run ./cmd/patrol -workers 0 input.txt
//
// Quick ASCII example:
//
//	....#.....
//	.........#
//	..........
//	..#.......
//	.......#..
//	..........
//	.#..^.....
//	........#.
//	#.........
//	......#...
//
// The guard starting at '^' covers 41 cells before leaving; 6 cells trap it
// in a loop when blocked.
package patrol
