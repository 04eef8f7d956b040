// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// eller.go: Eller's row-by-row set-merging builder.

package builder

import (
	"iter"

	"github.com/katalvlaran/lvmaze/maze"
)

// Eller phases within one row.
const (
	phaseJoin = iota // merge horizontally adjacent cells of different sets
	phaseDrop        // open at least one passage per set to the next row
)

// Eller carves a perfect maze one row at a time while keeping a partition
// of cells into disjoint sets.
//
// Row y takes two steps:
//
//  1. join: scan left to right; two adjacent cells in different sets are
//     merged (and the wall between them opened) with probability 1/2. On the
//     last row the merge is forced, so every remaining set collapses into one.
//  2. drop: cells of row y are grouped by set in x order; for each group a
//     random non-empty subset opens a passage Up into row y+1 and joins it.
//     The last row has no drop step.
//
// Rows advance along Up (increasing y). A W×H maze takes 2H−1 working steps
// and ends as a spanning tree with W·H−1 passages. The start position only
// seeds the Current hint.
//
// Complexity: O(W) per step with α(W×H) union-find overhead; memory O(W×H).
type Eller struct {
	m        *maze.Maze
	rng      *stream
	sets     *disjointSet
	row      int
	phase    int
	finished bool
}

// NewEller binds an Eller builder to m.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrStartOutOfBounds.
func NewEller(m *maze.Maze, startX, startY int, seed int64) (*Eller, error) {
	if err := validateStart(methodNewEller, m, startX, startY); err != nil {
		return nil, err
	}
	setStatus(m, maze.Position{X: startX, Y: startY}, maze.Current)
	return &Eller{
		m:    m,
		rng:  newStream(seed),
		sets: newDisjointSet(m.Size()),
	}, nil
}

func (e *Eller) id(x, y int) int {
	id, _ := e.m.ID(x, y)
	return int(id)
}

// Step runs the next join or drop phase.
func (e *Eller) Step() bool {
	if e.finished {
		return false
	}
	if e.row >= e.m.Height() {
		e.finished = true
		return false
	}
	switch e.phase {
	case phaseJoin:
		e.join()
		if e.row == e.m.Height()-1 {
			e.paintRow(e.row, maze.Processed)
			e.row++
		} else {
			e.phase = phaseDrop
		}
	case phaseDrop:
		e.drop()
		e.paintRow(e.row, maze.Processed)
		e.row++
		e.phase = phaseJoin
	}
	return true
}

func (e *Eller) join() {
	y := e.row
	last := y == e.m.Height()-1
	e.paintRow(y, maze.Current)
	for x := 0; x+1 < e.m.Width(); x++ {
		a, b := e.id(x, y), e.id(x+1, y)
		if e.sets.find(a) == e.sets.find(b) {
			continue
		}
		if !last && e.rng.rng.Intn(2) == 0 {
			continue
		}
		e.m.Connect(x, y, maze.Left)
		e.sets.union(a, b)
	}
}

func (e *Eller) drop() {
	y := e.row
	// Group columns by set root, groups ordered by first appearance.
	var order []int
	groups := make(map[int][]int)
	for x := 0; x < e.m.Width(); x++ {
		root := e.sets.find(e.id(x, y))
		if _, seen := groups[root]; !seen {
			order = append(order, root)
		}
		groups[root] = append(groups[root], x)
	}
	r := e.rng.rng
	for _, root := range order {
		xs := groups[root]
		r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		k := 1 + r.Intn(len(xs))
		for _, x := range xs[:k] {
			e.m.Connect(x, y, maze.Up)
			e.sets.union(e.id(x, y), e.id(x, y+1))
			setStatus(e.m, maze.Position{X: x, Y: y + 1}, maze.Queued)
		}
	}
}

func (e *Eller) paintRow(y int, s maze.Status) {
	for x := 0; x < e.m.Width(); x++ {
		setStatus(e.m, maze.Position{X: x, Y: y}, s)
	}
}

// Run steps to completion.
func (e *Eller) Run() bool { return run(e.Step) }

// IsFinished reports whether every row has been processed.
func (e *Eller) IsFinished() bool { return e.finished }

// Steps yields each Step result until finished.
func (e *Eller) Steps() iter.Seq[bool] { return steps(e.Step, e.IsFinished) }

// Maze returns the maze being carved.
func (e *Eller) Maze() *maze.Maze { return e.m }

// Row returns the row the next step works on.
func (e *Eller) Row() int { return e.row }

// SetOf returns the representative set id of the cell at (x,y).
func (e *Eller) SetOf(x, y int) (int, bool) {
	if !e.m.InBounds(x, y) {
		return 0, false
	}
	return e.sets.find(e.id(x, y)), true
}

// EllerState is the plain-data state of an Eller builder.
type EllerState struct {
	Row      int      `json:"row"`
	Phase    int      `json:"phase"`
	Parent   []int    `json:"parent"`
	Rank     []int    `json:"rank"`
	RNG      RNGState `json:"rng"`
	Finished bool     `json:"finished"`
}

// Snapshot copies the builder state.
func (e *Eller) Snapshot() EllerState {
	return EllerState{
		Row:      e.row,
		Phase:    e.phase,
		Parent:   append([]int(nil), e.sets.parent...),
		Rank:     append([]int(nil), e.sets.rank...),
		RNG:      e.rng.state(),
		Finished: e.finished,
	}
}

// RestoreEller resumes an Eller builder on m from st.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrInvalidState.
func RestoreEller(m *maze.Maze, st EllerState) (*Eller, error) {
	if err := validateMaze(methodRestore, m); err != nil {
		return nil, err
	}
	n := m.Size()
	if len(st.Parent) != n || len(st.Rank) != n {
		return nil, builderErrorf(methodRestore, "partition has %d/%d entries for %d cells: %w", len(st.Parent), len(st.Rank), n, ErrInvalidState)
	}
	if st.Row < 0 || st.Row > m.Height() || (st.Phase != phaseJoin && st.Phase != phaseDrop) {
		return nil, builderErrorf(methodRestore, "row %d phase %d: %w", st.Row, st.Phase, ErrInvalidState)
	}
	for _, p := range st.Parent {
		if p < 0 || p >= n {
			return nil, builderErrorf(methodRestore, "parent %d: %w", p, ErrInvalidState)
		}
	}
	return &Eller{
		m:        m,
		rng:      restoreStream(st.RNG),
		sets:     &disjointSet{parent: append([]int(nil), st.Parent...), rank: append([]int(nil), st.Rank...)},
		row:      st.Row,
		phase:    st.Phase,
		finished: st.Finished,
	}, nil
}
