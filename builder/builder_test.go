// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/analysis"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/maze"
)

type factory func(m *maze.Maze, x, y int, seed int64) (builder.Builder, error)

var perfect = map[string]factory{
	"dfs": func(m *maze.Maze, x, y int, seed int64) (builder.Builder, error) {
		return builder.NewDFS(m, x, y, seed)
	},
	"bfs": func(m *maze.Maze, x, y int, seed int64) (builder.Builder, error) {
		return builder.NewBFS(m, x, y, seed)
	},
	"eller": func(m *maze.Maze, x, y int, seed int64) (builder.Builder, error) {
		return builder.NewEller(m, x, y, seed)
	},
}

var sizes = [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 7}, {8, 8}, {13, 4}}

func newMaze(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h)
	require.NoError(t, err)
	return m
}

func build(t *testing.T, f factory, w, h int, seed int64) (*maze.Maze, builder.Builder) {
	t.Helper()
	m := newMaze(t, w, h)
	b, err := f(m, 0, 0, seed)
	require.NoError(t, err)
	return m, b
}

func TestPerfectBuildersProduceSpanningTrees(t *testing.T) {
	for name, f := range perfect {
		for _, wh := range sizes {
			for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
				t.Run(fmt.Sprintf("%s/%dx%d/seed=%d", name, wh[0], wh[1], seed), func(t *testing.T) {
					m, b := build(t, f, wh[0], wh[1], seed)
					b.Run()
					require.True(t, b.IsFinished())
					assert.Equal(t, wh[0]*wh[1]-1, analysis.UniqueEdges(m))
					assert.Len(t, analysis.Components(m), 1)
					assert.False(t, analysis.HasCycle(m))
					assert.True(t, analysis.IsPerfect(m))
				})
			}
		}
	}
}

func TestStartPositionAnywhere(t *testing.T) {
	for name, f := range perfect {
		m := newMaze(t, 6, 5)
		b, err := f(m, 4, 3, 9)
		require.NoError(t, err, name)
		b.Run()
		assert.True(t, analysis.IsPerfect(m), name)
	}
}

// drive runs a fresh builder in one of three modes and returns the maze.
func drive(t *testing.T, f factory, mode string, w, h int, seed int64) *maze.Maze {
	t.Helper()
	m, b := build(t, f, w, h, seed)
	switch mode {
	case "step":
		for b.Step() {
		}
	case "run":
		b.Run()
	case "iter":
		for range b.Steps() {
		}
	}
	require.True(t, b.IsFinished())
	return m
}

func TestDrivingModesAgree(t *testing.T) {
	for name, f := range perfect {
		for _, seed := range []int64{3, 42, 2024} {
			byStep := drive(t, f, "step", 9, 6, seed)
			byRun := drive(t, f, "run", 9, 6, seed)
			byIter := drive(t, f, "iter", 9, 6, seed)
			assert.Equal(t, byStep.String(), byRun.String(), "%s seed=%d", name, seed)
			assert.Equal(t, byStep.String(), byIter.String(), "%s seed=%d", name, seed)
			assert.True(t, byStep.Equal(byIter))
		}
	}
}

func TestSeedChangesLayout(t *testing.T) {
	for name, f := range perfect {
		a := drive(t, f, "run", 10, 10, 1)
		b := drive(t, f, "run", 10, 10, 2)
		assert.NotEqual(t, a.String(), b.String(), name)
	}
}

func TestDFSFiveByFiveSeed42IsStable(t *testing.T) {
	first := drive(t, perfect["dfs"], "run", 5, 5, 42)
	for i := 0; i < 3; i++ {
		again := drive(t, perfect["dfs"], "step", 5, 5, 42)
		require.Equal(t, first.String(), again.String())
	}
	assert.Equal(t, 24, analysis.UniqueEdges(first))
}

func TestWorkingStepCounts(t *testing.T) {
	count := func(b builder.Builder) int {
		n := 0
		for b.Step() {
			n++
		}
		return n
	}
	const w, h = 7, 4
	_, dfs := build(t, perfect["dfs"], w, h, 5)
	assert.Equal(t, 2*w*h-1, count(dfs))
	_, bfs := build(t, perfect["bfs"], w, h, 5)
	assert.Equal(t, w*h, count(bfs))
	_, eller := build(t, perfect["eller"], w, h, 5)
	assert.Equal(t, 2*h-1, count(eller))
}

func TestFinishedIsMonotonic(t *testing.T) {
	for name, f := range perfect {
		m, b := build(t, f, 4, 4, 1)
		assert.False(t, b.IsFinished(), name)
		assert.True(t, b.Run(), name)
		assert.True(t, b.IsFinished(), name)
		before := m.String()

		assert.False(t, b.Step(), name)
		assert.False(t, b.Run(), "Run after finish does no work")
		for range b.Steps() {
			t.Fatalf("%s: Steps must be empty once finished", name)
		}
		assert.Equal(t, before, m.String())
		assert.Same(t, m, b.Maze())
	}
}

func TestStepsStopsEarlyAndResumes(t *testing.T) {
	ref := drive(t, perfect["dfs"], "run", 6, 6, 11)

	m, b := build(t, perfect["dfs"], 6, 6, 11)
	n := 0
	for range b.Steps() {
		n++
		if n == 10 {
			break
		}
	}
	assert.False(t, b.IsFinished())
	b.Run()
	assert.True(t, ref.Equal(m), "breaking out of Steps keeps the state machine intact")
}

func TestConstructorErrors(t *testing.T) {
	closed := newMaze(t, 3, 3)
	closed.Close()
	for name, f := range perfect {
		_, err := f(nil, 0, 0, 1)
		assert.ErrorIs(t, err, builder.ErrNilMaze, name)

		_, err = f(closed, 0, 0, 1)
		assert.ErrorIs(t, err, builder.ErrMazeClosed, name)

		for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {0, -1}} {
			_, err = f(newMaze(t, 3, 3), xy[0], xy[1], 1)
			assert.ErrorIs(t, err, builder.ErrStartOutOfBounds, name)
		}
	}
}

func TestStatusHintsSettle(t *testing.T) {
	for name, f := range perfect {
		m, b := build(t, f, 5, 3, 8)
		b.Run()
		for _, c := range m.Cells() {
			assert.Equal(t, maze.Processed, c.Status(), name)
		}
		m.ResetColors()
		for _, c := range m.Cells() {
			assert.Equal(t, maze.Unvisited, c.Status(), name)
		}
	}
}

func scramble(m *maze.Maze, k int) {
	for i, c := range m.Cells() {
		c.SetStatus(maze.Statuses[(i+k)%len(maze.Statuses)])
	}
}

func TestStatusHintsDoNotSteer(t *testing.T) {
	for name, f := range perfect {
		t.Run(name, func(t *testing.T) {
			plain, b := build(t, f, 9, 6, 11)
			b.Run()

			noisy, nb := build(t, f, 9, 6, 11)
			for k := 0; nb.Step(); k++ {
				scramble(noisy, k)
			}
			assert.True(t, plain.Equal(noisy))
		})
	}
}
