// SPDX-License-Identifier: MIT
package maze_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func TestSnapshotRestore(t *testing.T) {
	m := mustMaze(t, 3, 2)
	m.Connect(0, 0, maze.Left)
	m.Connect(1, 0, maze.Up)
	m.ConnectOneWay(2, 1, maze.Right)
	c, _ := m.Cell(1, 1)
	c.SetStatus(maze.InPath)

	snap := m.Snapshot()
	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var back maze.Snapshot
	require.NoError(t, json.Unmarshal(raw, &back))
	r, err := maze.Restore(back)
	require.NoError(t, err)

	assert.True(t, m.Equal(r))
	assert.Equal(t, m.String(), r.String())
	rc, _ := r.Cell(1, 1)
	assert.Equal(t, maze.InPath, rc.Status())
	assert.True(t, r.HasConnection(2, 1, maze.Right))
	assert.False(t, r.HasConnection(1, 1, maze.Left))
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	m := mustMaze(t, 2, 1)
	snap := m.Snapshot()
	m.Connect(0, 0, maze.Left)
	assert.Empty(t, snap.Adjacency)
}

func TestRestoreRejects(t *testing.T) {
	cases := map[string]maze.Snapshot{
		"zero size":      {Width: 0, Height: 3},
		"status length":  {Width: 2, Height: 2, Statuses: []maze.Status{0}},
		"unknown status": {Width: 1, Height: 1, Statuses: []maze.Status{42}},
		"non adjacent":   {Width: 3, Height: 3, Adjacency: map[maze.CellID][]maze.CellID{0: {4}}},
		"foreign id":     {Width: 2, Height: 2, Adjacency: map[maze.CellID][]maze.CellID{0: {9}}},
	}
	for name, snap := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := maze.Restore(snap)
			require.Error(t, err)
			if snap.Width < 1 {
				assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
			} else {
				assert.ErrorIs(t, err, maze.ErrInvalidSnapshot)
			}
		})
	}
}
