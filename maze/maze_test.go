// SPDX-License-Identifier: MIT
package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func mustMaze(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h)
	require.NoError(t, err)
	return m
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {0, 0}} {
		m, err := maze.New(wh[0], wh[1])
		assert.Nil(t, m)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	}
}

func TestNewIsDisconnectedAndUnvisited(t *testing.T) {
	m := mustMaze(t, 3, 2)
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, 0, m.PassageCount())
	for _, c := range m.Cells() {
		assert.Equal(t, maze.Unvisited, c.Status())
	}
}

func TestArenaIDsAreRowMajor(t *testing.T) {
	m := mustMaze(t, 4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, ok := m.Cell(x, y)
			require.True(t, ok)
			assert.Equal(t, maze.CellID(y*4+x), c.ID())

			p, ok := m.Coordinates(c)
			require.True(t, ok)
			assert.Equal(t, maze.Position{X: x, Y: y}, p)

			byID, ok := m.CellByID(c.ID())
			require.True(t, ok)
			assert.Same(t, c, byID)
		}
	}
}

func TestIDsAreScopedPerMaze(t *testing.T) {
	a := mustMaze(t, 2, 2)
	b := mustMaze(t, 2, 2)
	ca, _ := a.Cell(1, 1)
	cb, _ := b.Cell(1, 1)
	assert.Equal(t, ca.ID(), cb.ID(), "each maze has its own arena")
	assert.True(t, a.Owns(ca))
	assert.False(t, a.Owns(cb))

	_, ok := a.Coordinates(cb)
	assert.False(t, ok, "foreign cells have no coordinates")
}

func TestOutOfBoundsLookups(t *testing.T) {
	m := mustMaze(t, 2, 2)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		c, ok := m.Cell(xy[0], xy[1])
		assert.False(t, ok)
		assert.Nil(t, c)
	}
	_, ok := m.CellByID(4)
	assert.False(t, ok)
	_, ok = m.CellByID(-1)
	assert.False(t, ok)
	_, ok = m.Position(99)
	assert.False(t, ok)
	_, ok = m.Coordinates(nil)
	assert.False(t, ok)
}

func TestConnectDisconnect(t *testing.T) {
	m := mustMaze(t, 3, 3)
	m.Connect(1, 1, maze.Up)
	assert.True(t, m.HasConnection(1, 1, maze.Up))
	assert.True(t, m.HasConnection(1, 2, maze.Down))
	assert.False(t, m.HasConnection(1, 1, maze.Left))

	m.Disconnect(1, 2, maze.Down)
	assert.False(t, m.HasConnection(1, 1, maze.Up))
	assert.Equal(t, 0, m.PassageCount())
}

func TestOneWayConnections(t *testing.T) {
	m := mustMaze(t, 2, 1)
	m.ConnectOneWay(0, 0, maze.Left)
	assert.True(t, m.HasConnection(0, 0, maze.Left))
	assert.False(t, m.HasConnection(1, 0, maze.Right))

	m.Connect(0, 0, maze.Left)
	m.DisconnectOneWay(1, 0, maze.Right)
	assert.True(t, m.HasConnection(0, 0, maze.Left))
	assert.False(t, m.HasConnection(1, 0, maze.Right))
}

func TestOutOfBoundsConnectIsNoop(t *testing.T) {
	m := mustMaze(t, 2, 2)
	m.Connect(0, 0, maze.Down)
	m.Connect(0, 0, maze.Right)
	m.Connect(1, 1, maze.Up)
	m.Connect(5, 5, maze.Up)
	m.ConnectOneWay(1, 1, maze.Left)
	m.Connect(0, 0, maze.Direction(7))
	assert.Equal(t, 0, m.PassageCount())
	assert.False(t, m.HasConnection(0, 0, maze.Down))
	assert.False(t, m.HasConnection(-1, 0, maze.Left))
}

func TestNeighborsFollowPassagesOnly(t *testing.T) {
	m := mustMaze(t, 3, 1)
	m.Connect(0, 0, maze.Left)
	assert.Equal(t, []maze.CellID{1}, m.Neighbors(0))
	assert.Equal(t, []maze.CellID{0}, m.Neighbors(1))
	assert.Empty(t, m.Neighbors(2), "grid neighbour without a passage is not a graph neighbour")
}

func TestResetColorsIdempotent(t *testing.T) {
	m := mustMaze(t, 3, 3)
	for i, c := range m.Cells() {
		c.SetStatus(maze.Statuses[i%len(maze.Statuses)])
	}
	m.ResetColors()
	snap := m.Snapshot()
	m.ResetColors()
	assert.Equal(t, snap, m.Snapshot())
	for _, c := range m.Cells() {
		assert.Equal(t, maze.Unvisited, c.Status())
	}
}

func TestString(t *testing.T) {
	m := mustMaze(t, 2, 2)
	m.Connect(0, 0, maze.Left)
	m.Connect(0, 0, maze.Up)
	want := "{((0, 0), [UP, LEFT]), ((1, 0), [RIGHT]), ((0, 1), [DOWN]), ((1, 1), [])}"
	assert.Equal(t, want, m.String())
}

func TestEqualIgnoresStatusAndHistory(t *testing.T) {
	a := mustMaze(t, 2, 2)
	b := mustMaze(t, 2, 2)
	a.Connect(0, 0, maze.Up)
	b.Connect(1, 1, maze.Right)
	b.Disconnect(1, 1, maze.Right)
	b.Connect(0, 0, maze.Up)
	c, _ := b.Cell(0, 0)
	c.SetStatus(maze.InPath)
	assert.True(t, a.Equal(b))

	d := mustMaze(t, 2, 3)
	assert.False(t, a.Equal(d))
}

func TestAdjacencyIsACopy(t *testing.T) {
	m := mustMaze(t, 2, 1)
	m.Connect(0, 0, maze.Left)
	adj := m.Adjacency()
	adj.RemoveEdge(0, 1)
	assert.True(t, m.HasConnection(0, 0, maze.Left))
}

func TestClose(t *testing.T) {
	m := mustMaze(t, 1, 1)
	assert.False(t, m.Closed())
	m.Close()
	assert.True(t, m.Closed())
}
