// SPDX-License-Identifier: MIT
// Package: lvmaze/render

package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/maze"
)

// Palette maps each status to a terminal style. The core only defines the
// statuses; colours live here.
type Palette struct {
	Wall   tcell.Style
	Status [len(maze.Statuses)]tcell.Style
}

// DefaultPalette returns a dark-terminal palette.
func DefaultPalette() Palette {
	var p Palette
	p.Wall = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	p.Status[maze.Unvisited] = tcell.StyleDefault
	p.Status[maze.Queued] = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue)
	p.Status[maze.Current] = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	p.Status[maze.Processed] = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	p.Status[maze.InPath] = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	return p
}

// Style returns the style for s, or the Unvisited style for unknown values.
func (p Palette) Style(s maze.Status) tcell.Style {
	if int(s) >= len(p.Status) {
		return p.Status[maze.Unvisited]
	}
	return p.Status[s]
}

// Painter draws a maze onto a tcell.Screen with the same layout as ASCII,
// offset by (X, Y).
type Painter struct {
	Palette Palette
	X, Y    int
}

// NewPainter returns a Painter at the origin using DefaultPalette.
func NewPainter() *Painter {
	return &Painter{Palette: DefaultPalette()}
}

// Size returns the number of screen columns and rows Draw covers.
func (p *Painter) Size(m *maze.Maze) (int, int) {
	return 4*m.Width() + 1, 2*m.Height() + 1
}

// CellAt maps a maze position to the screen coordinate of its glyph.
func (p *Painter) CellAt(m *maze.Maze, pos maze.Position) (int, int) {
	return p.X + 4*pos.X + 2, p.Y + 2*(m.Height()-1-pos.Y) + 1
}

// Draw paints m. Cell interiors take the palette style of their status;
// everything else takes the wall style. Draw does not call Show.
func (p *Painter) Draw(s tcell.Screen, m *maze.Maze) {
	if s == nil || m == nil {
		return
	}
	h := m.Height()
	lines := strings.Split(strings.TrimSuffix(ASCII(m), "\n"), "\n")
	for r, line := range lines {
		for c, ch := range []rune(line) {
			style := p.Palette.Wall
			// Odd rows hold cells; columns 1..3 of every 4 are a cell interior.
			if r%2 == 1 && c%4 != 0 {
				if cell, ok := m.Cell(c/4, h-1-r/2); ok {
					style = p.Palette.Style(cell.Status())
				}
			}
			s.SetContent(p.X+c, p.Y+r, ch, nil, style)
		}
	}
}
