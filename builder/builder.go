// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// builder.go: the Builder contract and the helpers every builder shares.

package builder

import (
	"iter"
	"math/rand"

	"github.com/katalvlaran/lvmaze/maze"
)

// Builder is a resumable maze-construction step machine.
type Builder interface {
	// Step performs one unit of construction and reports whether it did
	// any work. Once it returns false the builder is finished for good.
	Step() bool
	// Run steps until Step returns false. It reports whether at least one
	// step did work during this call.
	Run() bool
	// IsFinished reports the monotonic finished flag.
	IsFinished() bool
	// Steps yields Step results until the builder is finished. It consumes
	// the builder, so a second range over it yields nothing.
	Steps() iter.Seq[bool]
	// Maze returns the maze being built.
	Maze() *maze.Maze
}

// run drives step until it returns false.
func run(step func() bool) bool {
	did := false
	for step() {
		did = true
	}
	return did
}

// steps adapts a Step/IsFinished pair to a lazy sequence.
func steps(step func() bool, finished func() bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for !finished() {
			if !yield(step()) {
				return
			}
		}
	}
}

// shuffledDirections returns the four directions in a random order drawn
// from rng.
func shuffledDirections(rng *rand.Rand) [4]maze.Direction {
	dirs := maze.Directions
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	return dirs
}

// setStatus paints the cell at p when it exists.
func setStatus(m *maze.Maze, p maze.Position, s maze.Status) {
	if c, ok := m.Cell(p.X, p.Y); ok {
		c.SetStatus(s)
	}
}
