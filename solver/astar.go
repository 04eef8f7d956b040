// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// astar.go: weighted A* over the passage graph.

package solver

import (
	"container/heap"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvmaze/maze"
)

// AStar is a weighted A* search with a pluggable heuristic.
//
// Scores:
//
//   - g(n): best known passage distance from start (unit edge cost).
//   - f(n): g(n)·DistanceFactor + h(n, end)·HeuristicFactor.
//
// Each Step pops the lowest-f live frontier entry (ties by insertion order),
// marks it Current, and relaxes its graph neighbours. Stale heap entries
// (lazy decrease-key) are discarded without counting as a step. Popping the
// end cell reconstructs the path through the predecessor map and marks it
// InPath. An empty frontier finishes the search unsolved.
//
// Complexity: O((V + E) log V) over a full run; memory O(V + E).
type AStar struct {
	m          *maze.Maze
	start, end maze.CellID
	endPos     maze.Position
	h          Heuristic
	opts       Options

	g        map[maze.CellID]float64
	prev     map[maze.CellID]maze.CellID
	pq       frontier
	seq      uint64
	current  maze.CellID
	expanded int
	path     []maze.CellID
	solved   bool
	finished bool
}

const methodNewAStar = "NewAStar"

// NewAStar binds an A* solver to m.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrNilCell, ErrForeignCell,
// ErrSameEndpoints, ErrNilHeuristic, ErrBadFactor.
func NewAStar(m *maze.Maze, start, end *maze.Cell, h Heuristic, opts ...Option) (*AStar, error) {
	s, e, err := endpoints(methodNewAStar, m, start, end)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodNewAStar, ErrNilHeuristic)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewAStar, cfg.err)
	}

	endPos, _ := m.Position(e)
	a := &AStar{
		m:       m,
		start:   s,
		end:     e,
		endPos:  endPos,
		h:       h,
		opts:    cfg,
		g:       map[maze.CellID]float64{s: 0},
		prev:    make(map[maze.CellID]maze.CellID),
		current: maze.NoCell,
	}
	a.push(s, 0)
	return a, nil
}

// NewDijkstra is A* with the Zero heuristic and unit distance weight.
func NewDijkstra(m *maze.Maze, start, end *maze.Cell) (*AStar, error) {
	return NewAStar(m, start, end, Zero, WithDistanceFactor(1), WithHeuristicFactor(0))
}

// NewManhattan is A* with the Manhattan heuristic and the given weights.
func NewManhattan(m *maze.Maze, start, end *maze.Cell, distanceFactor, heuristicFactor float64) (*AStar, error) {
	return NewAStar(m, start, end, Manhattan, WithDistanceFactor(distanceFactor), WithHeuristicFactor(heuristicFactor))
}

// NewEuclidean is A* with the Euclidean heuristic and the given weights.
// The result is not guaranteed to be a shortest path.
func NewEuclidean(m *maze.Maze, start, end *maze.Cell, distanceFactor, heuristicFactor float64) (*AStar, error) {
	return NewAStar(m, start, end, Euclidean, WithDistanceFactor(distanceFactor), WithHeuristicFactor(heuristicFactor))
}

func (a *AStar) score(id maze.CellID, g float64) float64 {
	p, _ := a.m.Position(id)
	return g*a.opts.DistanceFactor + a.h(p, a.endPos)*a.opts.HeuristicFactor
}

func (a *AStar) push(id maze.CellID, g float64) {
	heap.Push(&a.pq, FrontierEntry{ID: id, F: a.score(id, g), G: g, Seq: a.seq})
	a.seq++
	paint(a.m, id, maze.Queued)
}

// popLive discards stale entries and returns the next live one.
func (a *AStar) popLive() (FrontierEntry, bool) {
	for a.pq.Len() > 0 {
		it := heap.Pop(&a.pq).(FrontierEntry)
		if it.G == a.g[it.ID] {
			return it, true
		}
	}
	return FrontierEntry{}, false
}

// Step expands one frontier cell.
func (a *AStar) Step() bool {
	if a.finished {
		return false
	}
	it, ok := a.popLive()
	if a.current != maze.NoCell {
		paint(a.m, a.current, maze.Processed)
	}
	if !ok {
		a.current = maze.NoCell
		a.finished = true
		return false
	}
	a.current = it.ID
	a.expanded++
	paint(a.m, it.ID, maze.Current)

	if it.ID == a.end {
		path, ok := a.reconstruct()
		if ok {
			a.path = path
			paintAll(a.m, a.path, maze.InPath)
			a.solved = true
		}
		a.finished = true
		return true
	}

	// Only passages count, not grid neighbours.
	for _, v := range a.m.Neighbors(it.ID) {
		tentative := it.G + 1
		if old, seen := a.g[v]; seen && tentative >= old {
			continue
		}
		a.g[v] = tentative
		a.prev[v] = it.ID
		a.push(v, tentative)
	}
	return true
}

// reconstruct walks prev back from end. A chain longer than the maze or one
// with a gap reports false.
func (a *AStar) reconstruct() ([]maze.CellID, bool) {
	path := []maze.CellID{a.end}
	for at := a.end; at != a.start; {
		if len(path) > a.m.Size() {
			return nil, false
		}
		p, ok := a.prev[at]
		if !ok {
			return nil, false
		}
		at = p
		path = append(path, at)
	}
	slices.Reverse(path)
	return path, true
}

// chainsToStart reports whether prev leads from id back to start within
// limit hops.
func chainsToStart(prev map[maze.CellID]maze.CellID, id, start maze.CellID, limit int) bool {
	for hops := 0; id != start; hops++ {
		p, ok := prev[id]
		if !ok || hops >= limit {
			return false
		}
		id = p
	}
	return true
}

// Run steps to completion and returns Solved().
func (a *AStar) Run() bool {
	for a.Step() {
	}
	return a.solved
}

// IsFinished reports whether the search ended.
func (a *AStar) IsFinished() bool { return a.finished }

// Solved reports whether the end cell was reached.
func (a *AStar) Solved() bool { return a.solved }

// Path returns a copy of the start…end path, or nil.
func (a *AStar) Path() []maze.CellID { return slices.Clone(a.path) }

// Steps yields each Step result until finished.
func (a *AStar) Steps() iter.Seq[bool] { return steps(a.Step, a.IsFinished) }

// Maze returns the maze being searched.
func (a *AStar) Maze() *maze.Maze { return a.m }

// Current returns the most recently expanded cell, or NoCell.
func (a *AStar) Current() maze.CellID { return a.current }

// Expanded returns the number of cells popped and expanded so far.
func (a *AStar) Expanded() int { return a.expanded }

// Frontier returns the number of heap entries, stale ones included.
func (a *AStar) Frontier() int { return a.pq.Len() }

// Scores returns g and f for id if it has been discovered.
func (a *AStar) Scores(id maze.CellID) (g, f float64, ok bool) {
	g, ok = a.g[id]
	if !ok {
		return 0, 0, false
	}
	return g, a.score(id, g), true
}

// AStarState is the plain-data state of an A* solver. The heuristic is
// code, not data; RestoreAStar takes it again.
type AStarState struct {
	Start           maze.CellID                 `json:"start"`
	End             maze.CellID                 `json:"end"`
	DistanceFactor  float64                     `json:"distanceFactor"`
	HeuristicFactor float64                     `json:"heuristicFactor"`
	GScore          map[maze.CellID]float64     `json:"gScore"`
	Prev            map[maze.CellID]maze.CellID `json:"prev"`
	Frontier        []FrontierEntry             `json:"frontier"`
	Seq             uint64                      `json:"seq"`
	Current         maze.CellID                 `json:"current"`
	Expanded        int                         `json:"expanded"`
	Path            []maze.CellID               `json:"path,omitempty"`
	Solved          bool                        `json:"solved"`
	Finished        bool                        `json:"finished"`
}

// Snapshot copies the solver state. Frontier is in heap order.
func (a *AStar) Snapshot() AStarState {
	st := AStarState{
		Start:           a.start,
		End:             a.end,
		DistanceFactor:  a.opts.DistanceFactor,
		HeuristicFactor: a.opts.HeuristicFactor,
		GScore:          make(map[maze.CellID]float64, len(a.g)),
		Prev:            make(map[maze.CellID]maze.CellID, len(a.prev)),
		Frontier:        slices.Clone([]FrontierEntry(a.pq)),
		Seq:             a.seq,
		Current:         a.current,
		Expanded:        a.expanded,
		Path:            slices.Clone(a.path),
		Solved:          a.solved,
		Finished:        a.finished,
	}
	for k, v := range a.g {
		st.GScore[k] = v
	}
	for k, v := range a.prev {
		st.Prev[k] = v
	}
	return st
}

// RestoreAStar resumes an A* solver on m from st with heuristic h.
//
// Errors: ErrNilMaze, ErrMazeClosed, ErrNilHeuristic, ErrBadFactor,
// ErrInvalidState.
func RestoreAStar(m *maze.Maze, st AStarState, h Heuristic) (*AStar, error) {
	const method = "RestoreAStar"
	if err := validateMaze(method, m); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilHeuristic)
	}
	for _, f := range []float64{st.DistanceFactor, st.HeuristicFactor} {
		if err := checkFactor("factor", f); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	owned := func(id maze.CellID) bool { _, ok := m.CellByID(id); return ok }
	if !owned(st.Start) || !owned(st.End) || st.Start == st.End {
		return nil, fmt.Errorf("%s: endpoints %d→%d: %w", method, st.Start, st.End, ErrInvalidState)
	}
	if st.Current != maze.NoCell && !owned(st.Current) {
		return nil, fmt.Errorf("%s: current cell %d: %w", method, st.Current, ErrInvalidState)
	}
	for _, e := range st.Frontier {
		if !owned(e.ID) {
			return nil, fmt.Errorf("%s: frontier cell %d: %w", method, e.ID, ErrInvalidState)
		}
	}
	for k, v := range st.Prev {
		if !owned(k) || !owned(v) {
			return nil, fmt.Errorf("%s: predecessor %d→%d: %w", method, v, k, ErrInvalidState)
		}
	}
	if _, ok := st.GScore[st.Start]; !ok {
		return nil, fmt.Errorf("%s: start %d has no score: %w", method, st.Start, ErrInvalidState)
	}
	for id := range st.GScore {
		if !owned(id) {
			return nil, fmt.Errorf("%s: scored cell %d: %w", method, id, ErrInvalidState)
		}
		if !chainsToStart(st.Prev, id, st.Start, m.Size()) {
			return nil, fmt.Errorf("%s: cell %d does not lead back to start: %w", method, id, ErrInvalidState)
		}
	}
	endPos, _ := m.Position(st.End)
	a := &AStar{
		m:        m,
		start:    st.Start,
		end:      st.End,
		endPos:   endPos,
		h:        h,
		opts:     Options{DistanceFactor: st.DistanceFactor, HeuristicFactor: st.HeuristicFactor},
		g:        make(map[maze.CellID]float64, len(st.GScore)),
		prev:     make(map[maze.CellID]maze.CellID, len(st.Prev)),
		pq:       frontier(slices.Clone(st.Frontier)),
		seq:      st.Seq,
		current:  st.Current,
		expanded: st.Expanded,
		path:     slices.Clone(st.Path),
		solved:   st.Solved,
		finished: st.Finished,
	}
	for k, v := range st.GScore {
		a.g[k] = v
	}
	for k, v := range st.Prev {
		a.prev[k] = v
	}
	heap.Init(&a.pq)
	return a, nil
}
