// SPDX-License-Identifier: MIT
// Package: lvmaze/render

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// arrow picks the connector for a pair: both ways, forward only, backward
// only, or none.
func arrow(fwd, back bool, both, onlyFwd, onlyBack byte) byte {
	switch {
	case fwd && back:
		return both
	case fwd:
		return onlyFwd
	case back:
		return onlyBack
	default:
		return ' '
	}
}

// Formatted lists zero-padded cell ids row by row, highest row first.
// Between horizontal neighbours: '-' two-way, '>' only towards +x,
// '<' only towards −x. Under each id: '|' two-way, 'v' only downwards,
// '^' only upwards. Trailing spaces are trimmed.
func Formatted(m *maze.Maze) string {
	if m == nil {
		return ""
	}
	width := len(strconv.Itoa(m.Size() - 1))
	w, h := m.Width(), m.Height()

	var sb strings.Builder
	line := make([]byte, 0, w*(width+1))
	flush := func() {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
		line = line[:0]
	}
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			id, _ := m.ID(x, y)
			line = fmt.Appendf(line, "%0*d", width, id)
			if x < w-1 {
				line = append(line, arrow(
					m.HasConnection(x, y, maze.Left),
					m.HasConnection(x+1, y, maze.Right),
					'-', '>', '<'))
			}
		}
		flush()
		if y == 0 {
			break
		}
		for x := 0; x < w; x++ {
			line = append(line, arrow(
				m.HasConnection(x, y, maze.Down),
				m.HasConnection(x, y-1, maze.Up),
				'|', 'v', '^'))
			line = append(line, strings.Repeat(" ", width)...)
		}
		flush()
	}
	return sb.String()
}
