// Package input reads puzzle rows from a file or stream for grid.FromLines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFileName is read when no input path is configured.
const DefaultFileName = "input.txt"

// ErrInput indicates the input could not be read or holds no rows.
var ErrInput = errors.New("input: unusable puzzle input")

// ReadLines returns the non-blank rows of r with surrounding whitespace
// stripped. Trailing blank lines are dropped; a blank line between rows is
// an error.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	blankAt := 0
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if blankAt == 0 {
				blankAt = n
			}
			continue
		}
		if blankAt != 0 && len(lines) > 0 {
			return nil, fmt.Errorf("%w: blank line %d inside the grid", ErrInput, blankAt)
		}
		blankAt = 0
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInput)
	}
	return lines, nil
}

// ReadFile opens path and reads its rows with ReadLines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
