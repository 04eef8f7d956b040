// SPDX-License-Identifier: MIT
// Package: lvmaze/analysis

package analysis

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for analysis queries.
var (
	// ErrNilMaze is returned if a nil maze is passed.
	ErrNilMaze = errors.New("analysis: maze is nil")
	// ErrCellNotFound is returned when an id is outside the maze's arena.
	ErrCellNotFound = errors.New("analysis: cell not found")
	// ErrNoPath is returned when the target is unreachable.
	ErrNoPath = errors.New("analysis: no path between cells")
)

func checkCell(method string, m *maze.Maze, id maze.CellID) error {
	if m == nil {
		return fmt.Errorf("analysis: %s: %w", method, ErrNilMaze)
	}
	if _, ok := m.CellByID(id); !ok {
		return fmt.Errorf("analysis: %s: id %d: %w", method, id, ErrCellNotFound)
	}
	return nil
}

// walk runs BFS from src and returns hop counts and predecessors.
func walk(m *maze.Maze, src maze.CellID) (map[maze.CellID]int, map[maze.CellID]maze.CellID) {
	dist := map[maze.CellID]int{src: 0}
	prev := map[maze.CellID]maze.CellID{src: maze.NoCell}
	queue := []maze.CellID{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range m.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			prev[v] = u
			queue = append(queue, v)
		}
	}
	return dist, prev
}

// Distances returns the passage distance from src to every reachable cell.
// Unreachable cells are absent from the map.
//
// Errors: ErrNilMaze, ErrCellNotFound.
func Distances(m *maze.Maze, src maze.CellID) (map[maze.CellID]int, error) {
	if err := checkCell("Distances", m, src); err != nil {
		return nil, err
	}
	dist, _ := walk(m, src)
	return dist, nil
}

// ShortestPath returns one shortest path src…dst inclusive.
//
// Errors: ErrNilMaze, ErrCellNotFound, ErrNoPath.
func ShortestPath(m *maze.Maze, src, dst maze.CellID) ([]maze.CellID, error) {
	if err := checkCell("ShortestPath", m, src); err != nil {
		return nil, err
	}
	if err := checkCell("ShortestPath", m, dst); err != nil {
		return nil, err
	}
	_, prev := walk(m, src)
	if _, ok := prev[dst]; !ok {
		return nil, fmt.Errorf("analysis: ShortestPath(%d,%d): %w", src, dst, ErrNoPath)
	}
	var path []maze.CellID
	for at := dst; at != maze.NoCell; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return path, nil
}

// undirected returns the symmetric closure of the passage graph with
// duplicate arcs removed, neighbour lists ascending.
func undirected(m *maze.Maze) [][]maze.CellID {
	out := make([][]maze.CellID, m.Size())
	for id := 0; id < m.Size(); id++ {
		for _, v := range m.Neighbors(maze.CellID(id)) {
			out[id] = append(out[id], v)
			out[v] = append(out[v], maze.CellID(id))
		}
	}
	for i := range out {
		slices.Sort(out[i])
		out[i] = slices.Compact(out[i])
	}
	return out
}

// Components returns the connected regions of the undirected passage graph.
// Each component lists ids in BFS order; components are ordered by their
// smallest id.
func Components(m *maze.Maze) [][]maze.CellID {
	if m == nil {
		return nil
	}
	g := undirected(m)
	seen := make([]bool, m.Size())
	var comps [][]maze.CellID
	for s := range g {
		if seen[s] {
			continue
		}
		seen[s] = true
		comp := []maze.CellID{maze.CellID(s)}
		for qi := 0; qi < len(comp); qi++ {
			for _, v := range g[comp[qi]] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// UniqueEdges counts unordered cell pairs joined by at least one arc.
func UniqueEdges(m *maze.Maze) int {
	if m == nil {
		return 0
	}
	n := 0
	for _, nbrs := range undirected(m) {
		n += len(nbrs)
	}
	return n / 2
}

// HasCycle reports whether the undirected passage graph contains a cycle.
// A graph is a forest iff E = V − C.
func HasCycle(m *maze.Maze) bool {
	if m == nil {
		return false
	}
	return UniqueEdges(m) > m.Size()-len(Components(m))
}

// IsSymmetric reports whether every arc a→b has a matching b→a.
func IsSymmetric(m *maze.Maze) bool {
	if m == nil {
		return true
	}
	for id := 0; id < m.Size(); id++ {
		a := maze.CellID(id)
		for _, b := range m.Neighbors(a) {
			if !slices.Contains(m.Neighbors(b), a) {
				return false
			}
		}
	}
	return true
}

// IsPerfect reports whether the passages form a spanning tree: two-way,
// connected and exactly W·H−1 of them.
func IsPerfect(m *maze.Maze) bool {
	if m == nil {
		return false
	}
	return IsSymmetric(m) &&
		m.PassageCount() == 2*(m.Size()-1) &&
		UniqueEdges(m) == m.Size()-1 &&
		len(Components(m)) == 1
}

// IsValidWalk reports whether path is non-empty, stays inside the arena and
// every consecutive pair is joined by an arc in walking direction.
func IsValidWalk(m *maze.Maze, path []maze.CellID) bool {
	if m == nil || len(path) == 0 {
		return false
	}
	for i, id := range path {
		if _, ok := m.CellByID(id); !ok {
			return false
		}
		if i > 0 && !slices.Contains(m.Neighbors(path[i-1]), id) {
			return false
		}
	}
	return true
}
