// SPDX-License-Identifier: MIT
// Package: lvmaze/analysis

// Package analysis answers read-only structural questions about a built maze.
//
// What:
//
//   - Distances / ShortestPath: unit-cost breadth-first search along
//     passages (arc direction is honoured).
//   - Components: connected regions of the undirected passage graph.
//   - UniqueEdges / HasCycle / IsPerfect: spanning-tree checks. A maze is
//     perfect when every passage is two-way, there are exactly W·H−1 of them
//     and the grid is one component.
//   - IsValidWalk: every consecutive pair of a path is joined by a passage.
//
// Nothing here mutates the maze or reads cell statuses. The package is the
// brute-force reference the solver tests compare against.
//
// Complexity:
//
//   - Distances, ShortestPath, Components: O(W×H) time and memory.
//   - UniqueEdges, HasCycle, IsPerfect:    O(W×H).
package analysis
