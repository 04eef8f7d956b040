// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// imperfect.go: wall toggling on top of a perfect builder.

package builder

import (
	"iter"

	"github.com/katalvlaran/lvmaze/maze"
)

// Imperfect wraps a perfect builder and, once it finishes, flips a fixed
// number of random walls to introduce loops and shortcuts.
//
// The quota is floor((W−1)·(H−1)·percent/100). Each toggle picks a random
// cell and a random in-bounds direction from it, then connects the pair if
// it is closed or disconnects it if it is open. Toggle randomness comes from
// a stream derived from the seed, so the perfect phase is identical to the
// base builder run alone.
//
// IsFinished is true only once the base is finished and the quota is spent.
type Imperfect struct {
	base     Builder
	m        *maze.Maze
	rng      *stream
	quota    int
	toggles  int
	last     maze.Position
	toggled  bool
	finished bool
}

// NewImperfect wraps base with a toggle phase of the given percent.
//
// Errors: ErrNilBuilder, ErrNilMaze, ErrMazeClosed, ErrBadPercent.
func NewImperfect(base Builder, seed int64, percent int) (*Imperfect, error) {
	if base == nil {
		return nil, builderErrorf(methodNewImperfect, "%w", ErrNilBuilder)
	}
	m := base.Maze()
	if err := validateMaze(methodNewImperfect, m); err != nil {
		return nil, err
	}
	if percent < 0 || percent > 100 {
		return nil, builderErrorf(methodNewImperfect, "percent=%d: %w", percent, ErrBadPercent)
	}
	return &Imperfect{
		base:  base,
		m:     m,
		rng:   newStream(deriveSeed(seedOrDefault(seed), streamToggle)),
		quota: ToggleQuota(m.Width(), m.Height(), percent),
	}, nil
}

// NewImperfectDFS is NewDFS followed by NewImperfect with the same seed.
func NewImperfectDFS(m *maze.Maze, startX, startY int, seed int64, percent int) (*Imperfect, error) {
	base, err := NewDFS(m, startX, startY, seed)
	if err != nil {
		return nil, err
	}
	return NewImperfect(base, seed, percent)
}

// NewImperfectBFS is NewBFS followed by NewImperfect with the same seed.
func NewImperfectBFS(m *maze.Maze, startX, startY int, seed int64, percent int) (*Imperfect, error) {
	base, err := NewBFS(m, startX, startY, seed)
	if err != nil {
		return nil, err
	}
	return NewImperfect(base, seed, percent)
}

// ToggleQuota returns floor((w−1)·(h−1)·percent/100).
func ToggleQuota(w, h, percent int) int {
	if w < 1 || h < 1 || percent <= 0 {
		return 0
	}
	return (w - 1) * (h - 1) * percent / 100
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// Step runs the base builder; when the base reports no more work the first
// toggle happens in the same call.
func (b *Imperfect) Step() bool {
	if b.finished {
		return false
	}
	if !b.base.IsFinished() && b.base.Step() {
		return true
	}
	if b.toggles >= b.quota {
		if b.toggled {
			setStatus(b.m, b.last, maze.Processed)
		}
		b.finished = true
		return false
	}
	b.toggle()
	return true
}

// toggle flips one random wall.
func (b *Imperfect) toggle() {
	r := b.rng.rng
	p := maze.Position{X: r.Intn(b.m.Width()), Y: r.Intn(b.m.Height())}

	var cands [4]maze.Direction
	n := 0
	for _, d := range maze.Directions {
		q := p.Add(d)
		if b.m.InBounds(q.X, q.Y) {
			cands[n] = d
			n++
		}
	}
	// quota > 0 implies W,H ≥ 2, so every cell has at least two candidates.
	dir := cands[r.Intn(n)]
	if b.m.HasConnection(p.X, p.Y, dir) {
		b.m.Disconnect(p.X, p.Y, dir)
	} else {
		b.m.Connect(p.X, p.Y, dir)
	}

	if b.toggled {
		setStatus(b.m, b.last, maze.Processed)
	}
	setStatus(b.m, p, maze.Current)
	b.last, b.toggled = p, true
	b.toggles++
}

// Run steps to completion.
func (b *Imperfect) Run() bool { return run(b.Step) }

// IsFinished reports whether both phases are exhausted.
func (b *Imperfect) IsFinished() bool { return b.finished }

// Steps yields each Step result until finished.
func (b *Imperfect) Steps() iter.Seq[bool] { return steps(b.Step, b.IsFinished) }

// Maze returns the maze being carved.
func (b *Imperfect) Maze() *maze.Maze { return b.m }

// Base returns the wrapped perfect builder.
func (b *Imperfect) Base() Builder { return b.base }

// Toggles returns the number of walls flipped so far.
func (b *Imperfect) Toggles() int { return b.toggles }

// Quota returns the total number of toggles this builder will perform.
func (b *Imperfect) Quota() int { return b.quota }

// ImperfectState is the plain-data state of the toggle phase. The base
// builder is snapshotted separately.
type ImperfectState struct {
	Quota    int            `json:"quota"`
	Toggles  int            `json:"toggles"`
	Last     *maze.Position `json:"last,omitempty"`
	RNG      RNGState       `json:"rng"`
	Finished bool           `json:"finished"`
}

// Snapshot copies the toggle-phase state.
func (b *Imperfect) Snapshot() ImperfectState {
	st := ImperfectState{
		Quota:    b.quota,
		Toggles:  b.toggles,
		RNG:      b.rng.state(),
		Finished: b.finished,
	}
	if b.toggled {
		last := b.last
		st.Last = &last
	}
	return st
}

// RestoreImperfect resumes the toggle phase around an already restored base.
//
// Errors: ErrNilBuilder, ErrNilMaze, ErrMazeClosed, ErrInvalidState.
func RestoreImperfect(base Builder, st ImperfectState) (*Imperfect, error) {
	if base == nil {
		return nil, builderErrorf(methodRestore, "%w", ErrNilBuilder)
	}
	m := base.Maze()
	if err := validateMaze(methodRestore, m); err != nil {
		return nil, err
	}
	if st.Quota < 0 || st.Toggles < 0 || st.Toggles > st.Quota {
		return nil, builderErrorf(methodRestore, "toggles %d of %d: %w", st.Toggles, st.Quota, ErrInvalidState)
	}
	if limit := ToggleQuota(m.Width(), m.Height(), 100); st.Quota > limit {
		return nil, builderErrorf(methodRestore, "quota %d exceeds %d for %dx%d: %w", st.Quota, limit, m.Width(), m.Height(), ErrInvalidState)
	}
	b := &Imperfect{
		base:     base,
		m:        m,
		rng:      restoreStream(st.RNG),
		quota:    st.Quota,
		toggles:  st.Toggles,
		finished: st.Finished,
	}
	if st.Last != nil {
		b.last, b.toggled = *st.Last, true
	}
	return b, nil
}
