// SPDX-License-Identifier: MIT
// Package: lvmaze/render

package render

import (
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Glyph returns the character drawn inside a cell with status s.
func Glyph(s maze.Status) rune {
	switch s {
	case maze.Queued:
		return '.'
	case maze.Current:
		return '@'
	case maze.Processed:
		return 'o'
	case maze.InPath:
		return '*'
	default:
		return ' '
	}
}

// open reports whether the wall between (x,y) and its neighbour along d is
// open in either direction.
func open(m *maze.Maze, x, y int, d maze.Direction) bool {
	if m.HasConnection(x, y, d) {
		return true
	}
	n := maze.Position{X: x, Y: y}.Add(d)
	return m.HasConnection(n.X, n.Y, d.Opposite())
}

// ASCII draws m with "+---+" walls, highest row first:
//
//	+---+---+
//	| @     |
//	+   +---+
//	| o   o |
//	+---+---+
func ASCII(m *maze.Maze) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	w, h := m.Width(), m.Height()
	for y := h - 1; y >= 0; y-- {
		// Wall above row y.
		for x := 0; x < w; x++ {
			sb.WriteByte('+')
			if y < h-1 && open(m, x, y, maze.Up) {
				sb.WriteString("   ")
			} else {
				sb.WriteString("---")
			}
		}
		sb.WriteString("+\n")

		// Cells of row y.
		sb.WriteByte('|')
		for x := 0; x < w; x++ {
			c, _ := m.Cell(x, y)
			sb.WriteByte(' ')
			sb.WriteRune(Glyph(c.Status()))
			sb.WriteByte(' ')
			if x < w-1 && open(m, x, y, maze.Left) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}
	for x := 0; x < w; x++ {
		sb.WriteString("+---")
	}
	sb.WriteString("+\n")
	return sb.String()
}
