// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/analysis"
	"github.com/katalvlaran/lvmaze/maze"
)

func testConfig(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := parseConfig(append([]string{"-width", "6", "-height", "5", "-seed", "3"}, args...), envOf(nil))
	require.NoError(t, err)
	return cfg
}

func TestSessionBuildsThenSolves(t *testing.T) {
	for _, b := range builders {
		for _, s := range solvers {
			sess, err := NewSession(testConfig(t, "-builder", b, "-solver", s))
			require.NoError(t, err)
			assert.Equal(t, PhaseBuild, sess.Phase())

			require.NoError(t, sess.Run())
			assert.Equal(t, PhaseDone, sess.Phase())
			assert.True(t, analysis.IsPerfect(sess.Maze()), "%s/%s", b, s)
			require.NotNil(t, sess.Solver())
			assert.True(t, sess.Solver().Solved(), "%s/%s", b, s)

			more, err := sess.Step()
			assert.NoError(t, err)
			assert.False(t, more)
		}
	}
}

func TestSessionHandoverClearsStatuses(t *testing.T) {
	sess, err := NewSession(testConfig(t, "-builder", "bfs"))
	require.NoError(t, err)
	for sess.Phase() == PhaseBuild {
		_, err := sess.Step()
		require.NoError(t, err)
	}
	queued := 0
	for _, c := range sess.Maze().Cells() {
		if c.Status() == maze.Queued {
			queued++
		}
		assert.NotEqual(t, maze.Processed, c.Status())
	}
	assert.Equal(t, 1, queued, "only the solver's start is queued right after handover")
}

func TestSessionImperfect(t *testing.T) {
	sess, err := NewSession(testConfig(t, "-percent", "50"))
	require.NoError(t, err)
	require.NoError(t, sess.Run())
	assert.Equal(t, 50, sess.Fields()["percent"])
	assert.Equal(t, sess.ID().String(), sess.Fields()["session"])

	other, err := NewSession(testConfig(t))
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID(), other.ID())
}

func TestSessionBadEndpoint(t *testing.T) {
	sess, err := NewSession(testConfig(t, "-end-x", "60"))
	require.NoError(t, err)
	err = sess.Run()
	assert.ErrorIs(t, err, errBadConfig)
	assert.Equal(t, PhaseDone, sess.Phase())
}

func TestSessionBadStart(t *testing.T) {
	_, err := NewSession(testConfig(t, "-start-x", "60"))
	assert.Error(t, err)
}

func TestRunPrintsFormats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-width", "3", "-height", "2", "-format", "ascii"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "+---+---+---+\n"))
	assert.Contains(t, out.String(), "*")

	out.Reset()
	require.NoError(t, run([]string{"-width", "3", "-height", "2", "-format", "formatted"}, &out))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 3)

	out.Reset()
	require.NoError(t, run([]string{"-width", "2", "-height", "1", "-format", "adjacency"}, &out))
	assert.Equal(t, "{((0, 0), [LEFT]), ((1, 0), [RIGHT])}\n", out.String())
}

func TestInteractiveLoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 30)

	sess, err := NewSession(testConfig(t))
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, loop(screen, sess))
	assert.Equal(t, PhaseDone, sess.Phase())
	assert.True(t, sess.Solver().Solved())

	r, _, _, _ := screen.GetContent(0, 2)
	assert.Equal(t, '+', r, "maze is drawn below the two header lines")
	assert.Contains(t, status(sess, nil), "path=")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "build", PhaseBuild.String())
	assert.Equal(t, "solve", PhaseSolve.String())
	assert.Equal(t, "done", PhaseDone.String())
}
