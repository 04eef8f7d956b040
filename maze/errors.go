// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// errors.go: sentinel errors for the maze package.
//
// Callers branch with errors.Is; messages are stable.

package maze

import "errors"

var (
	// ErrInvalidDimensions indicates width or height below 1.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")

	// ErrBadDirection indicates a vector that is not one of the four unit directions.
	ErrBadDirection = errors.New("maze: direction must be a non-zero orthogonal unit vector")

	// ErrInvalidSnapshot indicates snapshot data whose shape does not match its sizes.
	ErrInvalidSnapshot = errors.New("maze: invalid snapshot")
)
