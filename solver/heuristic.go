// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// heuristic.go: distance estimates for A*.

package solver

import (
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// Heuristic estimates the remaining cost from one grid position to another.
type Heuristic func(from, to maze.Position) float64

// Zero always returns 0, which turns A* into Dijkstra's algorithm.
func Zero(_, _ maze.Position) float64 { return 0 }

// Manhattan returns |dx|+|dy|. It never overestimates on a 4-connected
// unit-cost grid, so A* with it returns shortest paths.
func Manhattan(from, to maze.Position) float64 {
	return math.Abs(float64(from.X-to.X)) + math.Abs(float64(from.Y-to.Y))
}

// Euclidean returns the straight-line distance. The true cost on this grid
// is Manhattan-like, and A* with Euclidean makes no shortest-path promise;
// callers that need one use Zero or Manhattan.
func Euclidean(from, to maze.Position) float64 {
	return math.Hypot(float64(from.X-to.X), float64(from.Y-to.Y))
}
