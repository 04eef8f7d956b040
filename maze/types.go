// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// types.go: Status, Direction, Position, CellID and Cell.

package maze

import "fmt"

// Status is the visitation hint a renderer reads to pick a colour.
type Status uint8

const (
	// Unvisited is the initial status of every cell.
	Unvisited Status = iota
	// Queued marks a cell sitting in a frontier (stack, queue or heap).
	Queued
	// Current marks the cell being worked on by the active step.
	Current
	// Processed marks a cell the algorithm is done with.
	Processed
	// InPath marks a cell on a reconstructed solution path.
	InPath
)

// Statuses lists every Status in declaration order.
var Statuses = [...]Status{Unvisited, Queued, Current, Processed, InPath}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Unvisited:
		return "Unvisited"
	case Queued:
		return "Queued"
	case Current:
		return "Current"
	case Processed:
		return "Processed"
	case InPath:
		return "InPath"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Direction is one of the four grid unit vectors.
type Direction int

const (
	// Up is (0,+1).
	Up Direction = iota
	// Left is (+1,0).
	Left
	// Down is (0,-1).
	Down
	// Right is (-1,0).
	Right
)

// Directions lists all four directions in declaration order.
// Callers that shuffle must copy it first.
var Directions = [...]Direction{Up, Left, Down, Right}

var (
	directionDX   = [...]int{0, 1, 0, -1}
	directionDY   = [...]int{1, 0, -1, 0}
	directionName = [...]string{"UP", "LEFT", "DOWN", "RIGHT"}
)

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool { return d >= Up && d <= Right }

// DX returns the x component of d, or 0 for an invalid direction.
func (d Direction) DX() int {
	if !d.Valid() {
		return 0
	}
	return directionDX[d]
}

// DY returns the y component of d, or 0 for an invalid direction.
func (d Direction) DY() int {
	if !d.Valid() {
		return 0
	}
	return directionDY[d]
}

// Vector returns (dx, dy).
func (d Direction) Vector() (int, int) { return d.DX(), d.DY() }

// Opposite returns the direction pointing the other way.
// Up↔Down, Left↔Right. An invalid direction is returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

// String returns the upper-case direction name (UP, LEFT, DOWN, RIGHT).
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionName[d]
}

// DirectionFromVector maps a unit vector back to its Direction.
// Diagonal, zero and non-unit vectors fail with ErrBadDirection.
func DirectionFromVector(dx, dy int) (Direction, error) {
	for _, d := range Directions {
		if directionDX[d] == dx && directionDY[d] == dy {
			return d, nil
		}
	}
	return 0, fmt.Errorf("DirectionFromVector(%d,%d): %w", dx, dy, ErrBadDirection)
}

// Position is a grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved one unit along d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX(), Y: p.Y + d.DY()}
}

// String formats p as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// CellID is a cell identity handed out by a Maze's arena.
type CellID int

// NoCell is the sentinel id for "no cell" (e.g. a missing predecessor).
const NoCell CellID = -1

// Cell is one grid square: a fixed identity plus a render hint.
type Cell struct {
	id     CellID
	status Status
}

// ID returns the cell identity.
func (c *Cell) ID() CellID { return c.id }

// Status returns the current render hint.
func (c *Cell) Status() Status { return c.status }

// SetStatus overwrites the render hint.
func (c *Cell) SetStatus(s Status) { c.status = s }
