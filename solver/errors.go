// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// errors.go: sentinel errors for the solver package.
//
// Unsolvable mazes are NOT errors: a solver that exhausts its frontier or
// backtrack stack finishes with Solved() == false.

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

var (
	// ErrNilMaze indicates a constructor received a nil *maze.Maze.
	ErrNilMaze = errors.New("solver: maze is nil")

	// ErrMazeClosed indicates a constructor received a closed maze.
	ErrMazeClosed = errors.New("solver: maze is closed")

	// ErrNilCell indicates a nil start or end cell.
	ErrNilCell = errors.New("solver: cell is nil")

	// ErrForeignCell indicates a start or end cell that belongs to another maze.
	ErrForeignCell = errors.New("solver: cell does not belong to maze")

	// ErrSameEndpoints indicates start and end are the same cell.
	ErrSameEndpoints = errors.New("solver: start and end are the same cell")

	// ErrBadFactor indicates a negative or NaN score weight.
	ErrBadFactor = errors.New("solver: factor must be a non-negative number")

	// ErrNilHeuristic indicates NewAStar was given no heuristic.
	ErrNilHeuristic = errors.New("solver: heuristic is nil")

	// ErrInvalidState indicates a snapshot that does not fit the maze.
	ErrInvalidState = errors.New("solver: invalid snapshot state")
)

// endpoints validates the maze and both cells in priority order and returns
// the cell ids.
func endpoints(method string, m *maze.Maze, start, end *maze.Cell) (maze.CellID, maze.CellID, error) {
	if err := validateMaze(method, m); err != nil {
		return 0, 0, err
	}
	if start == nil || end == nil {
		return 0, 0, fmt.Errorf("%s: %w", method, ErrNilCell)
	}
	if !m.Owns(start) || !m.Owns(end) {
		return 0, 0, fmt.Errorf("%s: %w", method, ErrForeignCell)
	}
	if start == end {
		return 0, 0, fmt.Errorf("%s: cell %d: %w", method, start.ID(), ErrSameEndpoints)
	}
	return start.ID(), end.ID(), nil
}

func validateMaze(method string, m *maze.Maze) error {
	if m == nil {
		return fmt.Errorf("%s: %w", method, ErrNilMaze)
	}
	if m.Closed() {
		return fmt.Errorf("%s: %w", method, ErrMazeClosed)
	}
	return nil
}
