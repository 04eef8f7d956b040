// SPDX-License-Identifier: MIT
package builder_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/maze"
)

// roundTrip serialises v to JSON and back into out.
func roundTrip(t *testing.T, v, out any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func restoreMaze(t *testing.T, m *maze.Maze) *maze.Maze {
	t.Helper()
	var snap maze.Snapshot
	roundTrip(t, m.Snapshot(), &snap)
	r, err := maze.Restore(snap)
	require.NoError(t, err)
	return r
}

func TestDFSSnapshotResumes(t *testing.T) {
	ref := drive(t, perfect["dfs"], "run", 8, 5, 31)

	m := newMaze(t, 8, 5)
	b, err := builder.NewDFS(m, 0, 0, 31)
	require.NoError(t, err)
	for i := 0; i < 17; i++ {
		b.Step()
	}

	var st builder.DFSState
	roundTrip(t, b.Snapshot(), &st)
	m2 := restoreMaze(t, m)
	b2, err := builder.RestoreDFS(m2, st)
	require.NoError(t, err)
	b2.Run()

	assert.True(t, ref.Equal(m2))
}

func TestBFSSnapshotResumes(t *testing.T) {
	ref := drive(t, perfect["bfs"], "run", 6, 6, 12)

	m := newMaze(t, 6, 6)
	b, err := builder.NewBFS(m, 0, 0, 12)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		b.Step()
	}

	var st builder.BFSState
	roundTrip(t, b.Snapshot(), &st)
	b2, err := builder.RestoreBFS(restoreMaze(t, m), st)
	require.NoError(t, err)
	b2.Run()

	assert.True(t, ref.Equal(b2.Maze()))
}

func TestEllerSnapshotResumes(t *testing.T) {
	ref := drive(t, perfect["eller"], "run", 7, 7, 3)

	m := newMaze(t, 7, 7)
	b, err := builder.NewEller(m, 0, 0, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b.Step()
	}
	assert.Equal(t, 2, b.Row())

	var st builder.EllerState
	roundTrip(t, b.Snapshot(), &st)
	b2, err := builder.RestoreEller(restoreMaze(t, m), st)
	require.NoError(t, err)
	b2.Run()

	assert.True(t, ref.Equal(b2.Maze()))
}

func TestImperfectSnapshotResumes(t *testing.T) {
	mk := func(m *maze.Maze) *builder.Imperfect {
		b, err := builder.NewImperfectDFS(m, 0, 0, 55, 60)
		require.NoError(t, err)
		return b
	}
	refMaze := newMaze(t, 6, 5)
	mk(refMaze).Run()

	m := newMaze(t, 6, 5)
	b := mk(m)
	for !b.Base().IsFinished() {
		b.Step()
	}
	b.Step()
	b.Step()

	base := b.Base().(*builder.DFS)
	var dst builder.DFSState
	roundTrip(t, base.Snapshot(), &dst)
	var ist builder.ImperfectState
	roundTrip(t, b.Snapshot(), &ist)

	m2 := restoreMaze(t, m)
	base2, err := builder.RestoreDFS(m2, dst)
	require.NoError(t, err)
	b2, err := builder.RestoreImperfect(base2, ist)
	require.NoError(t, err)
	b2.Run()

	assert.True(t, refMaze.Equal(m2))
	assert.Equal(t, b2.Quota(), b2.Toggles())
}

func TestRestoreRejectsMismatchedState(t *testing.T) {
	m := newMaze(t, 3, 3)

	_, err := builder.RestoreDFS(m, builder.DFSState{Visited: make([]bool, 4)})
	assert.ErrorIs(t, err, builder.ErrInvalidState)

	_, err = builder.RestoreDFS(m, builder.DFSState{Visited: make([]bool, 9), Stack: []maze.Position{{X: 5, Y: 0}}})
	assert.ErrorIs(t, err, builder.ErrInvalidState)

	_, err = builder.RestoreBFS(nil, builder.BFSState{})
	assert.ErrorIs(t, err, builder.ErrNilMaze)

	_, err = builder.RestoreEller(m, builder.EllerState{Parent: make([]int, 9), Rank: make([]int, 9), Phase: 7})
	assert.ErrorIs(t, err, builder.ErrInvalidState)

	base, err := builder.NewDFS(m, 0, 0, 1)
	require.NoError(t, err)
	_, err = builder.RestoreImperfect(base, builder.ImperfectState{Quota: 1, Toggles: 2})
	assert.ErrorIs(t, err, builder.ErrInvalidState)

	_, err = builder.RestoreImperfect(base, builder.ImperfectState{Quota: 5})
	assert.ErrorIs(t, err, builder.ErrInvalidState, "3x3 allows at most 4 toggles")

	ok, err := builder.RestoreImperfect(base, builder.ImperfectState{Quota: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, ok.Quota())
}

func TestRestoreImperfectOnSingleCell(t *testing.T) {
	m := newMaze(t, 1, 1)
	base, err := builder.NewDFS(m, 0, 0, 1)
	require.NoError(t, err)
	base.Run()

	_, err = builder.RestoreImperfect(base, builder.ImperfectState{Quota: 3})
	assert.ErrorIs(t, err, builder.ErrInvalidState)

	b, err := builder.RestoreImperfect(base, builder.ImperfectState{})
	require.NoError(t, err)
	assert.NotPanics(t, func() { b.Run() })
	assert.True(t, b.IsFinished())
}
