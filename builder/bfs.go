// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// bfs.go: breadth-first spanning-tree carver.

package builder

import (
	"iter"

	"github.com/katalvlaran/lvmaze/maze"
)

// BFS carves a perfect maze by flooding outward from the start.
//
// Each step dequeues one position, shuffles the four directions and opens a
// passage to every unvisited in-bounds neighbour, enqueuing each one. The
// result is a spanning tree with short corridors radiating from the start.
//
// Complexity: W×H working steps, O(1) per step; memory O(W×H).
type BFS struct {
	m        *maze.Maze
	rng      *stream
	queue    []maze.Position
	visited  []bool
	current  maze.Position
	started  bool
	finished bool
}

// NewBFS binds a BFS builder to m, seeded at (startX, startY).
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrStartOutOfBounds.
func NewBFS(m *maze.Maze, startX, startY int, seed int64) (*BFS, error) {
	if err := validateStart(methodNewBFS, m, startX, startY); err != nil {
		return nil, err
	}
	b := &BFS{
		m:       m,
		rng:     newStream(seed),
		visited: make([]bool, m.Size()),
	}
	start := maze.Position{X: startX, Y: startY}
	b.enqueue(start)
	return b, nil
}

func (b *BFS) enqueue(p maze.Position) {
	id, _ := b.m.ID(p.X, p.Y)
	b.visited[id] = true
	b.queue = append(b.queue, p)
	setStatus(b.m, p, maze.Queued)
}

// Step dequeues one position and opens all its unvisited neighbours.
func (b *BFS) Step() bool {
	if b.finished {
		return false
	}
	if b.started {
		setStatus(b.m, b.current, maze.Processed)
	}
	if len(b.queue) == 0 {
		b.finished = true
		return false
	}
	p := b.queue[0]
	b.queue = b.queue[1:]
	b.current, b.started = p, true
	setStatus(b.m, p, maze.Current)

	for _, dir := range shuffledDirections(b.rng.rng) {
		next := p.Add(dir)
		id, ok := b.m.ID(next.X, next.Y)
		if !ok || b.visited[id] {
			continue
		}
		b.m.Connect(p.X, p.Y, dir)
		b.enqueue(next)
	}
	return true
}

// Run steps to completion.
func (b *BFS) Run() bool { return run(b.Step) }

// IsFinished reports whether the queue has been exhausted.
func (b *BFS) IsFinished() bool { return b.finished }

// Steps yields each Step result until finished.
func (b *BFS) Steps() iter.Seq[bool] { return steps(b.Step, b.IsFinished) }

// Maze returns the maze being carved.
func (b *BFS) Maze() *maze.Maze { return b.m }

// Pending returns the number of queued positions.
func (b *BFS) Pending() int { return len(b.queue) }

// BFSState is the plain-data state of a BFS builder.
type BFSState struct {
	Queue    []maze.Position `json:"queue"`
	Visited  []bool          `json:"visited"`
	Current  *maze.Position  `json:"current,omitempty"`
	RNG      RNGState        `json:"rng"`
	Finished bool            `json:"finished"`
}

// Snapshot copies the builder state.
func (b *BFS) Snapshot() BFSState {
	st := BFSState{
		Queue:    append([]maze.Position(nil), b.queue...),
		Visited:  append([]bool(nil), b.visited...),
		RNG:      b.rng.state(),
		Finished: b.finished,
	}
	if b.started {
		cur := b.current
		st.Current = &cur
	}
	return st
}

// RestoreBFS resumes a BFS builder on m from st.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrInvalidState.
func RestoreBFS(m *maze.Maze, st BFSState) (*BFS, error) {
	if err := validateMaze(methodRestore, m); err != nil {
		return nil, err
	}
	if len(st.Visited) != m.Size() {
		return nil, builderErrorf(methodRestore, "visited has %d entries for %d cells: %w", len(st.Visited), m.Size(), ErrInvalidState)
	}
	for _, p := range st.Queue {
		if !m.InBounds(p.X, p.Y) {
			return nil, builderErrorf(methodRestore, "queued position %v: %w", p, ErrInvalidState)
		}
	}
	b := &BFS{
		m:        m,
		rng:      restoreStream(st.RNG),
		queue:    append([]maze.Position(nil), st.Queue...),
		visited:  append([]bool(nil), st.Visited...),
		finished: st.Finished,
	}
	if st.Current != nil {
		b.current, b.started = *st.Current, true
	}
	return b, nil
}
