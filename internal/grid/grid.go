// Package grid provides an immutable 2D character grid and directional
// word matching over it.
package grid

import (
	"errors"
	"iter"
	"strings"

	"github.com/vovakirdan/aoc2024/internal/core"
)

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a rectangular array of single-byte characters.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []byte
}

// New builds a grid from equal-length rows. Width is taken from the first row.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(rows[0])
	g := &Grid{
		W:     w,
		H:     len(rows),
		cells: make([]byte, 0, w*len(rows)),
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Parse builds a grid from newline-separated text.
// A trailing newline and CRLF line endings are tolerated.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return New(lines)
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p core.Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the character at p, or false if p is out of bounds.
func (g *Grid) At(p core.Position) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y*g.W+p.X], true
}

// All yields every (position, character) pair in row-major order.
// The sequence can be ranged over any number of times.
func (g *Grid) All() iter.Seq2[core.Position, byte] {
	return func(yield func(core.Position, byte) bool) {
		for i, c := range g.cells {
			if !yield(core.P(i%g.W, i/g.W), c) {
				return
			}
		}
	}
}
