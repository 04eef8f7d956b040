// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Constructors wrap them with method context via builderErrorf + %w.
//   • Callers branch with errors.Is, never on message text.
//   • Step/Run never fail; a builder that cannot progress simply finishes.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ErrNilMaze indicates a constructor received a nil *maze.Maze.
var ErrNilMaze = errors.New("builder: maze is nil")

// ErrMazeClosed indicates a constructor received a maze that was already closed.
var ErrMazeClosed = errors.New("builder: maze is closed")

// ErrStartOutOfBounds indicates the start position lies outside the grid.
var ErrStartOutOfBounds = errors.New("builder: start position out of bounds")

// ErrBadPercent indicates an imperfection percentage outside [0,100].
var ErrBadPercent = errors.New("builder: percent out of range")

// ErrNilBuilder indicates NewImperfect received no base builder.
var ErrNilBuilder = errors.New("builder: base builder is nil")

// ErrInvalidState indicates a snapshot that does not fit the maze it is
// being restored onto.
var ErrInvalidState = errors.New("builder: invalid snapshot state")

// Method names used as error prefixes.
const (
	methodNewDFS       = "NewDFS"
	methodNewBFS       = "NewBFS"
	methodNewEller     = "NewEller"
	methodNewImperfect = "NewImperfect"
	methodRestore      = "Restore"
)

// builderErrorf prefixes a wrapped sentinel with the method name:
// "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// validateStart runs the shared constructor checks in priority order:
// nil maze, closed maze, start bounds.
func validateStart(method string, m *maze.Maze, x, y int) error {
	if err := validateMaze(method, m); err != nil {
		return err
	}
	if !m.InBounds(x, y) {
		return builderErrorf(method, "start (%d,%d): %w", x, y, ErrStartOutOfBounds)
	}
	return nil
}

// validateMaze rejects nil and closed mazes.
func validateMaze(method string, m *maze.Maze) error {
	if m == nil {
		return builderErrorf(method, "%w", ErrNilMaze)
	}
	if m.Closed() {
		return builderErrorf(method, "%w", ErrMazeClosed)
	}
	return nil
}
