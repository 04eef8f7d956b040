// SPDX-License-Identifier: MIT
package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmaze/maze"
)

type AdjacencySuite struct {
	suite.Suite
	l *maze.AdjacencyList
}

func (s *AdjacencySuite) SetupTest() {
	s.l = maze.NewAdjacencyList()
}

func (s *AdjacencySuite) TestAddEdgeIsBidirectional() {
	require := require.New(s.T())
	s.l.AddEdge(1, 2)
	require.True(s.l.HasEdge(1, 2))
	require.True(s.l.HasEdge(2, 1))
	require.Equal(2, s.l.EdgeCount())
}

func (s *AdjacencySuite) TestOneWay() {
	require := require.New(s.T())
	s.l.AddEdgeOneWay(3, 4)
	require.True(s.l.HasEdge(3, 4))
	require.False(s.l.HasEdge(4, 3), "one-way arc must not be mirrored")

	s.l.RemoveEdgeOneWay(3, 4)
	require.False(s.l.HasEdge(3, 4))
	require.Empty(s.l.Nodes(), "empty neighbour slices are dropped")
}

func (s *AdjacencySuite) TestDuplicatesRemoveFirstOccurrence() {
	require := require.New(s.T())
	s.l.AddEdgeOneWay(0, 1)
	s.l.AddEdgeOneWay(0, 2)
	s.l.AddEdgeOneWay(0, 1)
	require.Equal([]maze.CellID{1, 2, 1}, s.l.Neighbors(0))

	s.l.RemoveEdgeOneWay(0, 1)
	require.Equal([]maze.CellID{2, 1}, s.l.Neighbors(0), "only the first 0→1 goes")
	require.True(s.l.HasEdge(0, 1))
}

func (s *AdjacencySuite) TestRemoveMissingIsNoop() {
	require := require.New(s.T())
	s.l.AddEdge(0, 1)
	s.l.RemoveEdge(5, 6)
	s.l.RemoveEdgeOneWay(0, 9)
	require.Equal(2, s.l.EdgeCount())
}

func (s *AdjacencySuite) TestNeighborsIsACopy() {
	require := require.New(s.T())
	s.l.AddEdge(0, 1)
	nb := s.l.Neighbors(0)
	nb[0] = 42
	require.Equal([]maze.CellID{1}, s.l.Neighbors(0))
	require.Empty(s.l.Neighbors(77))
}

func (s *AdjacencySuite) TestCloneEqualString() {
	require := require.New(s.T())
	s.l.AddEdge(2, 1)
	s.l.AddEdge(0, 1)
	c := s.l.Clone()
	require.True(s.l.Equal(c))
	require.Equal("{0: [1], 1: [2 0], 2: [1]}", s.l.String())

	c.RemoveEdge(0, 1)
	require.False(s.l.Equal(c), "clone must not alias the original")
	require.Equal(4, s.l.EdgeCount())
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
