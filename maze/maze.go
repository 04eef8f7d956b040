// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// maze.go: the Maze grid and its coordinate-level passage operations.

package maze

import (
	"fmt"
	"strings"
)

// Maze is a fixed W×H grid of cells plus the passages between them.
type Maze struct {
	width, height int
	cells         []Cell // arena; cells[y*width+x].id == y*width+x
	adj           *AdjacencyList
	closed        bool
}

// New creates a width×height maze with every cell Unvisited and no passages.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//
// Complexity: O(W×H).
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	m := &Maze{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		adj:    NewAdjacencyList(),
	}
	for i := range m.cells {
		m.cells[i].id = CellID(i)
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Size returns W×H.
func (m *Maze) Size() int { return len(m.cells) }

// InBounds reports whether (x,y) lies in [0,W-1]×[0,H-1].
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// ID returns the id of the cell at (x,y).
func (m *Maze) ID(x, y int) (CellID, bool) {
	if !m.InBounds(x, y) {
		return NoCell, false
	}
	return CellID(y*m.width + x), true
}

// Cell returns the cell at (x,y), or false when out of bounds.
func (m *Maze) Cell(x, y int) (*Cell, bool) {
	id, ok := m.ID(x, y)
	if !ok {
		return nil, false
	}
	return &m.cells[id], true
}

// CellByID returns the cell with the given id, or false if the id is not in
// this maze's arena.
func (m *Maze) CellByID(id CellID) (*Cell, bool) {
	if id < 0 || int(id) >= len(m.cells) {
		return nil, false
	}
	return &m.cells[id], true
}

// Position returns the coordinates of id.
func (m *Maze) Position(id CellID) (Position, bool) {
	if id < 0 || int(id) >= len(m.cells) {
		return Position{}, false
	}
	return Position{X: int(id) % m.width, Y: int(id) / m.width}, true
}

// Coordinates returns where c sits in the grid. Cells that do not belong to
// this maze yield false.
func (m *Maze) Coordinates(c *Cell) (Position, bool) {
	if !m.Owns(c) {
		return Position{}, false
	}
	return m.Position(c.id)
}

// Owns reports whether c is one of this maze's cells.
func (m *Maze) Owns(c *Cell) bool {
	if c == nil || c.id < 0 || int(c.id) >= len(m.cells) {
		return false
	}
	return &m.cells[c.id] == c
}

// Cells returns the cells in row-major order. The pointers alias the maze.
func (m *Maze) Cells() []*Cell {
	out := make([]*Cell, len(m.cells))
	for i := range m.cells {
		out[i] = &m.cells[i]
	}
	return out
}

// pair resolves (x,y) and its neighbour along dir. ok is false when either
// end is off the grid or dir is invalid.
func (m *Maze) pair(x, y int, dir Direction) (from, to CellID, ok bool) {
	if !dir.Valid() {
		return NoCell, NoCell, false
	}
	from, ok = m.ID(x, y)
	if !ok {
		return NoCell, NoCell, false
	}
	to, ok = m.ID(x+dir.DX(), y+dir.DY())
	if !ok {
		return NoCell, NoCell, false
	}
	return from, to, true
}

// Connect opens a two-way passage from (x,y) towards dir.
// A source or target outside the grid is a silent no-op.
func (m *Maze) Connect(x, y int, dir Direction) {
	if from, to, ok := m.pair(x, y, dir); ok {
		m.adj.AddEdge(from, to)
	}
}

// ConnectOneWay opens the passage from (x,y) towards dir only.
func (m *Maze) ConnectOneWay(x, y int, dir Direction) {
	if from, to, ok := m.pair(x, y, dir); ok {
		m.adj.AddEdgeOneWay(from, to)
	}
}

// Disconnect closes the two-way passage from (x,y) towards dir.
func (m *Maze) Disconnect(x, y int, dir Direction) {
	if from, to, ok := m.pair(x, y, dir); ok {
		m.adj.RemoveEdge(from, to)
	}
}

// DisconnectOneWay closes the passage from (x,y) towards dir only.
func (m *Maze) DisconnectOneWay(x, y int, dir Direction) {
	if from, to, ok := m.pair(x, y, dir); ok {
		m.adj.RemoveEdgeOneWay(from, to)
	}
}

// HasConnection reports whether (x,y) has a passage towards dir.
// False when either end is off the grid.
func (m *Maze) HasConnection(x, y int, dir Direction) bool {
	from, to, ok := m.pair(x, y, dir)
	return ok && m.adj.HasEdge(from, to)
}

// Neighbors returns the cells reachable from id through one passage, in
// insertion order.
func (m *Maze) Neighbors(id CellID) []CellID {
	return m.adj.Neighbors(id)
}

// Adjacency returns a copy of the passage graph.
func (m *Maze) Adjacency() *AdjacencyList { return m.adj.Clone() }

// PassageCount returns the number of directed arcs in the passage graph.
func (m *Maze) PassageCount() int { return m.adj.EdgeCount() }

// ResetColors puts every cell back to Unvisited.
//
// Complexity: O(W×H).
func (m *Maze) ResetColors() {
	for i := range m.cells {
		m.cells[i].status = Unvisited
	}
}

// Close marks the maze as disposed. Builders and solvers refuse closed mazes.
func (m *Maze) Close() { m.closed = true }

// Closed reports whether Close was called.
func (m *Maze) Closed() bool { return m.closed }

// Equal reports whether both mazes have the same size and passages.
// Statuses are ignored.
func (m *Maze) Equal(other *Maze) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.width == other.width && m.height == other.height && m.adj.Equal(other.adj)
}

// String renders every cell with its open directions:
//
//	{((0, 0), [UP, LEFT]), ((1, 0), [RIGHT]), ...}
//
// Rows are listed y-major and directions in declaration order, so two mazes
// with the same passages always produce the same string.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if x > 0 || y > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "((%d, %d), [", x, y)
			first := true
			for _, d := range Directions {
				if !m.HasConnection(x, y, d) {
					continue
				}
				if !first {
					sb.WriteString(", ")
				}
				sb.WriteString(d.String())
				first = false
			}
			sb.WriteString("])")
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
