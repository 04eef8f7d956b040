// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// snapshot.go: plain-data export and import of a Maze.

package maze

import "fmt"

// Snapshot is the introspectable state of a Maze.
type Snapshot struct {
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Adjacency map[CellID][]CellID `json:"adjacency"`
	Statuses  []Status            `json:"statuses"`
}

// Snapshot copies the maze state. The result shares nothing with m.
func (m *Maze) Snapshot() Snapshot {
	st := make([]Status, len(m.cells))
	for i := range m.cells {
		st[i] = m.cells[i].status
	}
	return Snapshot{
		Width:     m.width,
		Height:    m.height,
		Adjacency: m.adj.export(),
		Statuses:  st,
	}
}

// Restore rebuilds a Maze from s.
//
// Errors:
//   - ErrInvalidDimensions for sizes below 1.
//   - ErrInvalidSnapshot if Statuses has the wrong length, or an arc
//     references an id outside the grid or joins two non-adjacent cells.
func Restore(s Snapshot) (*Maze, error) {
	const method = "Restore"
	m, err := New(s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if s.Statuses != nil && len(s.Statuses) != m.Size() {
		return nil, fmt.Errorf("%s: %d statuses for %d cells: %w", method, len(s.Statuses), m.Size(), ErrInvalidSnapshot)
	}
	for i, st := range s.Statuses {
		if st > InPath {
			return nil, fmt.Errorf("%s: cell %d has %v: %w", method, i, st, ErrInvalidSnapshot)
		}
		m.cells[i].status = st
	}
	for from, nbrs := range s.Adjacency {
		for _, to := range nbrs {
			if !m.gridAdjacent(from, to) {
				return nil, fmt.Errorf("%s: arc %d→%d: %w", method, from, to, ErrInvalidSnapshot)
			}
			m.adj.AddEdgeOneWay(from, to)
		}
	}
	return m, nil
}

// gridAdjacent reports whether a and b are both in the arena and differ by
// exactly one unit along exactly one axis.
func (m *Maze) gridAdjacent(a, b CellID) bool {
	pa, ok := m.Position(a)
	if !ok {
		return false
	}
	pb, ok := m.Position(b)
	if !ok {
		return false
	}
	_, err := DirectionFromVector(pb.X-pa.X, pb.Y-pa.Y)
	return err == nil
}
