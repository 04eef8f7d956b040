// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// solver.go: the Solver contract and shared helpers.

package solver

import (
	"iter"

	"github.com/katalvlaran/lvmaze/maze"
)

// Solver is a resumable path-search step machine bound to a built maze and
// a fixed pair of endpoints. Solvers never open or close passages.
type Solver interface {
	// Step performs one unit of search and reports whether it did any work.
	Step() bool
	// Run steps to completion and returns Solved().
	Run() bool
	// IsFinished reports the monotonic finished flag.
	IsFinished() bool
	// Solved distinguishes "finished, solved" from "finished, unsolvable".
	Solved() bool
	// Path returns the start…end cell ids once solved, otherwise nil.
	Path() []maze.CellID
	// Steps yields Step results until finished; non-restartable.
	Steps() iter.Seq[bool]
	// Maze returns the maze being searched.
	Maze() *maze.Maze
}

func steps(step func() bool, finished func() bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for !finished() {
			if !yield(step()) {
				return
			}
		}
	}
}

func paint(m *maze.Maze, id maze.CellID, s maze.Status) {
	if c, ok := m.CellByID(id); ok {
		c.SetStatus(s)
	}
}

func paintAll(m *maze.Maze, ids []maze.CellID, s maze.Status) {
	for _, id := range ids {
		paint(m, id, s)
	}
}
