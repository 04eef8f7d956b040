// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// adjacency_list.go: coordinate-free graph over opaque cell ids.

package maze

import (
	"slices"
	"strconv"
	"strings"
)

// AdjacencyList maps a node id to its ordered neighbour ids.
// Neighbour order is insertion order; duplicates are kept if an edge is added
// twice. Empty neighbour slices are dropped so two lists with the same arcs
// compare Equal regardless of history.
//
// The zero value is not usable; call NewAdjacencyList.
type AdjacencyList struct {
	adj map[CellID][]CellID
}

// NewAdjacencyList returns an empty list.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{adj: make(map[CellID][]CellID)}
}

// AddEdge inserts a↔b.
//
// Complexity: O(1) amortized.
func (l *AdjacencyList) AddEdge(a, b CellID) {
	l.AddEdgeOneWay(a, b)
	l.AddEdgeOneWay(b, a)
}

// AddEdgeOneWay inserts the arc from→to only.
//
// Complexity: O(1) amortized.
func (l *AdjacencyList) AddEdgeOneWay(from, to CellID) {
	l.adj[from] = append(l.adj[from], to)
}

// RemoveEdge removes the first occurrence of a→b and of b→a.
//
// Complexity: O(deg(a) + deg(b)).
func (l *AdjacencyList) RemoveEdge(a, b CellID) {
	l.RemoveEdgeOneWay(a, b)
	l.RemoveEdgeOneWay(b, a)
}

// RemoveEdgeOneWay removes the first occurrence of from→to.
// Missing arcs are a no-op.
//
// Complexity: O(deg(from)).
func (l *AdjacencyList) RemoveEdgeOneWay(from, to CellID) {
	nbrs, ok := l.adj[from]
	if !ok {
		return
	}
	i := slices.Index(nbrs, to)
	if i < 0 {
		return
	}
	nbrs = slices.Delete(nbrs, i, i+1)
	if len(nbrs) == 0 {
		delete(l.adj, from)
		return
	}
	l.adj[from] = nbrs
}

// HasEdge reports whether the arc from→to exists.
//
// Complexity: O(deg(from)).
func (l *AdjacencyList) HasEdge(from, to CellID) bool {
	return slices.Contains(l.adj[from], to)
}

// Neighbors returns a copy of id's neighbours in insertion order.
// Unknown ids yield an empty slice.
func (l *AdjacencyList) Neighbors(id CellID) []CellID {
	return slices.Clone(l.adj[id])
}

// Degree returns the number of arcs leaving id.
func (l *AdjacencyList) Degree(id CellID) int { return len(l.adj[id]) }

// Nodes returns every id with at least one outgoing arc, ascending.
func (l *AdjacencyList) Nodes() []CellID {
	ids := make([]CellID, 0, len(l.adj))
	for id := range l.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// EdgeCount returns the number of directed arcs.
// A bidirectional passage counts twice.
func (l *AdjacencyList) EdgeCount() int {
	n := 0
	for _, nbrs := range l.adj {
		n += len(nbrs)
	}
	return n
}

// Clone returns a deep copy.
func (l *AdjacencyList) Clone() *AdjacencyList {
	c := &AdjacencyList{adj: make(map[CellID][]CellID, len(l.adj))}
	for id, nbrs := range l.adj {
		c.adj[id] = slices.Clone(nbrs)
	}
	return c
}

// Equal reports whether both lists hold the same arcs in the same order.
func (l *AdjacencyList) Equal(other *AdjacencyList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.adj) != len(other.adj) {
		return false
	}
	for id, nbrs := range l.adj {
		if !slices.Equal(nbrs, other.adj[id]) {
			return false
		}
	}
	return true
}

// String renders "{0: [1 5], 1: [0], ...}" with ascending keys.
func (l *AdjacencyList) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range l.Nodes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(id)))
		sb.WriteString(": [")
		for j, n := range l.adj[id] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(n)))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
	return sb.String()
}

// export returns a deep copy of the raw map.
func (l *AdjacencyList) export() map[CellID][]CellID {
	return l.Clone().adj
}
