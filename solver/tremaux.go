// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// tremaux.go: mark-and-backtrack wall follower.

package solver

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvmaze/maze"
)

// Tremaux walks the maze keeping a visit mark per cell and a stack of the
// cells behind the walker.
//
// Each Step, in order:
//
//  1. At the end cell: solved; the stack plus the end becomes the path and
//     is marked InPath.
//  2. Otherwise pick the first graph neighbour with mark 0, else the first
//     with mark 1 that is not the cell just behind (the stack top).
//  3. Found: push the current cell, bump the neighbour's mark, move there.
//  4. None: retreat by popping the stack. An empty stack means the maze is
//     unsolvable and the search finishes.
//
// A cell is entered at most twice, so the walk always terminates within
// O(V + E) steps. The start cell begins with mark 1.
type Tremaux struct {
	m          *maze.Maze
	start, end maze.CellID

	marks    []int
	stack    []maze.CellID
	current  maze.CellID
	path     []maze.CellID
	solved   bool
	finished bool
}

const methodNewTremaux = "NewTremaux"

// NewTremaux binds a Tremaux solver to m.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrNilCell, ErrForeignCell,
// ErrSameEndpoints.
func NewTremaux(m *maze.Maze, start, end *maze.Cell) (*Tremaux, error) {
	s, e, err := endpoints(methodNewTremaux, m, start, end)
	if err != nil {
		return nil, err
	}
	t := &Tremaux{
		m:       m,
		start:   s,
		end:     e,
		marks:   make([]int, m.Size()),
		current: s,
	}
	t.marks[s] = 1
	paint(m, s, maze.Current)
	return t, nil
}

func (t *Tremaux) behind() maze.CellID {
	if len(t.stack) == 0 {
		return maze.NoCell
	}
	return t.stack[len(t.stack)-1]
}

// next picks the neighbour to advance to, or NoCell.
func (t *Tremaux) next() maze.CellID {
	nbrs := t.m.Neighbors(t.current)
	for _, v := range nbrs {
		if t.marks[v] == 0 {
			return v
		}
	}
	back := t.behind()
	for _, v := range nbrs {
		if t.marks[v] == 1 && v != back {
			return v
		}
	}
	return maze.NoCell
}

// Step advances, retreats, or recognises the end.
func (t *Tremaux) Step() bool {
	if t.finished {
		return false
	}
	if t.current == t.end {
		t.path = append(slices.Clone(t.stack), t.current)
		paintAll(t.m, t.path, maze.InPath)
		t.solved, t.finished = true, true
		return true
	}

	if v := t.next(); v != maze.NoCell {
		t.stack = append(t.stack, t.current)
		paint(t.m, t.current, maze.Queued)
		t.marks[v]++
		t.current = v
		paint(t.m, v, maze.Current)
		return true
	}

	// Dead end.
	paint(t.m, t.current, maze.Processed)
	if len(t.stack) == 0 {
		t.finished = true
		return false
	}
	t.current = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	paint(t.m, t.current, maze.Current)
	return true
}

// Run steps to completion and returns Solved().
func (t *Tremaux) Run() bool {
	for t.Step() {
	}
	return t.solved
}

// IsFinished reports whether the walk ended.
func (t *Tremaux) IsFinished() bool { return t.finished }

// Solved reports whether the end cell was reached.
func (t *Tremaux) Solved() bool { return t.solved }

// Path returns a copy of the start…end walk, or nil.
func (t *Tremaux) Path() []maze.CellID { return slices.Clone(t.path) }

// Steps yields each Step result until finished.
func (t *Tremaux) Steps() iter.Seq[bool] { return steps(t.Step, t.IsFinished) }

// Maze returns the maze being searched.
func (t *Tremaux) Maze() *maze.Maze { return t.m }

// Current returns the walker's cell.
func (t *Tremaux) Current() maze.CellID { return t.current }

// Mark returns the visit mark of id.
func (t *Tremaux) Mark(id maze.CellID) int {
	if id < 0 || int(id) >= len(t.marks) {
		return 0
	}
	return t.marks[id]
}

// TremauxState is the plain-data state of a Tremaux solver.
type TremauxState struct {
	Start    maze.CellID   `json:"start"`
	End      maze.CellID   `json:"end"`
	Marks    []int         `json:"marks"`
	Stack    []maze.CellID `json:"stack"`
	Current  maze.CellID   `json:"current"`
	Path     []maze.CellID `json:"path,omitempty"`
	Solved   bool          `json:"solved"`
	Finished bool          `json:"finished"`
}

// Snapshot copies the solver state.
func (t *Tremaux) Snapshot() TremauxState {
	return TremauxState{
		Start:    t.start,
		End:      t.end,
		Marks:    slices.Clone(t.marks),
		Stack:    slices.Clone(t.stack),
		Current:  t.current,
		Path:     slices.Clone(t.path),
		Solved:   t.solved,
		Finished: t.finished,
	}
}

// RestoreTremaux resumes a Tremaux solver on m from st.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrInvalidState.
func RestoreTremaux(m *maze.Maze, st TremauxState) (*Tremaux, error) {
	const method = "RestoreTremaux"
	if err := validateMaze(method, m); err != nil {
		return nil, err
	}
	if len(st.Marks) != m.Size() {
		return nil, fmt.Errorf("%s: %d marks for %d cells: %w", method, len(st.Marks), m.Size(), ErrInvalidState)
	}
	owned := func(id maze.CellID) bool { _, ok := m.CellByID(id); return ok }
	if !owned(st.Start) || !owned(st.End) || !owned(st.Current) || st.Start == st.End {
		return nil, fmt.Errorf("%s: cells %d/%d/%d: %w", method, st.Start, st.End, st.Current, ErrInvalidState)
	}
	for _, id := range st.Stack {
		if !owned(id) {
			return nil, fmt.Errorf("%s: stack cell %d: %w", method, id, ErrInvalidState)
		}
	}
	return &Tremaux{
		m:        m,
		start:    st.Start,
		end:      st.End,
		marks:    slices.Clone(st.Marks),
		stack:    slices.Clone(st.Stack),
		current:  st.Current,
		path:     slices.Clone(st.Path),
		solved:   st.Solved,
		finished: st.Finished,
	}, nil
}
