// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// dfs.go: iterative recursive-backtracker.

package builder

import (
	"iter"

	"github.com/katalvlaran/lvmaze/maze"
)

// frame is one entry of the DFS stack.
type frame struct {
	Pos maze.Position `json:"pos"`
}

// DFS carves a perfect maze with an explicit-stack depth-first walk.
//
// Each step shuffles the four directions and advances to the first
// unvisited in-bounds neighbour, opening the wall to it. When no such
// neighbour exists the top frame is popped (backtrack). The builder finishes
// once the stack is empty, leaving a spanning tree with W·H−1 passages.
//
// Complexity: O(W×H) steps in total, O(1) per step; memory O(W×H).
type DFS struct {
	m        *maze.Maze
	rng      *stream
	stack    []frame
	visited  []bool
	finished bool
}

// NewDFS binds a DFS builder to m, starting at (startX, startY).
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrStartOutOfBounds.
func NewDFS(m *maze.Maze, startX, startY int, seed int64) (*DFS, error) {
	if err := validateStart(methodNewDFS, m, startX, startY); err != nil {
		return nil, err
	}
	d := &DFS{
		m:       m,
		rng:     newStream(seed),
		visited: make([]bool, m.Size()),
	}
	start := maze.Position{X: startX, Y: startY}
	d.push(start)
	setStatus(m, start, maze.Current)
	return d, nil
}

func (d *DFS) push(p maze.Position) {
	id, _ := d.m.ID(p.X, p.Y)
	d.visited[id] = true
	d.stack = append(d.stack, frame{Pos: p})
}

// Step advances or backtracks once.
func (d *DFS) Step() bool {
	if d.finished {
		return false
	}
	if len(d.stack) == 0 {
		d.finished = true
		return false
	}
	top := d.stack[len(d.stack)-1].Pos
	for _, dir := range shuffledDirections(d.rng.rng) {
		next := top.Add(dir)
		id, ok := d.m.ID(next.X, next.Y)
		if !ok || d.visited[id] {
			continue
		}
		d.m.Connect(top.X, top.Y, dir)
		setStatus(d.m, top, maze.Queued)
		setStatus(d.m, next, maze.Current)
		d.push(next)
		return true
	}

	// Dead end: backtrack.
	d.stack = d.stack[:len(d.stack)-1]
	setStatus(d.m, top, maze.Processed)
	if len(d.stack) > 0 {
		setStatus(d.m, d.stack[len(d.stack)-1].Pos, maze.Current)
	}
	return true
}

// Run steps to completion.
func (d *DFS) Run() bool { return run(d.Step) }

// IsFinished reports whether the stack has been exhausted.
func (d *DFS) IsFinished() bool { return d.finished }

// Steps yields each Step result until finished.
func (d *DFS) Steps() iter.Seq[bool] { return steps(d.Step, d.IsFinished) }

// Maze returns the maze being carved.
func (d *DFS) Maze() *maze.Maze { return d.m }

// Current returns the position on top of the stack, or false once empty.
func (d *DFS) Current() (maze.Position, bool) {
	if len(d.stack) == 0 {
		return maze.Position{}, false
	}
	return d.stack[len(d.stack)-1].Pos, true
}

// DFSState is the plain-data state of a DFS builder.
type DFSState struct {
	Stack    []maze.Position `json:"stack"`
	Visited  []bool          `json:"visited"`
	RNG      RNGState        `json:"rng"`
	Finished bool            `json:"finished"`
}

// Snapshot copies the builder state.
func (d *DFS) Snapshot() DFSState {
	st := DFSState{
		Stack:    make([]maze.Position, len(d.stack)),
		Visited:  append([]bool(nil), d.visited...),
		RNG:      d.rng.state(),
		Finished: d.finished,
	}
	for i, f := range d.stack {
		st.Stack[i] = f.Pos
	}
	return st
}

// RestoreDFS resumes a DFS builder on m from st. m must carry the passages
// that existed when st was taken (see maze.Restore).
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrInvalidState.
func RestoreDFS(m *maze.Maze, st DFSState) (*DFS, error) {
	if err := validateMaze(methodRestore, m); err != nil {
		return nil, err
	}
	if len(st.Visited) != m.Size() {
		return nil, builderErrorf(methodRestore, "visited has %d entries for %d cells: %w", len(st.Visited), m.Size(), ErrInvalidState)
	}
	d := &DFS{
		m:        m,
		rng:      restoreStream(st.RNG),
		visited:  append([]bool(nil), st.Visited...),
		finished: st.Finished,
	}
	for _, p := range st.Stack {
		if !m.InBounds(p.X, p.Y) {
			return nil, builderErrorf(methodRestore, "stack position %v: %w", p, ErrInvalidState)
		}
		d.stack = append(d.stack, frame{Pos: p})
	}
	return d, nil
}
