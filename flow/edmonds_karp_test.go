package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/network"
)

// EdmondsKarpSuite exercises the Edmonds–Karp implementation.
type EdmondsKarpSuite struct {
	suite.Suite
}

func (s *EdmondsKarpSuite) solve(sources, sinks []int, rows [][]int64) *flow.Result {
	c, err := network.FromRows(rows)
	require.NoError(s.T(), err)

	res, err := flow.EdmondsKarp(c, network.Terminals{Sources: sources, Sinks: sinks}, flow.DefaultOptions())
	require.NoError(s.T(), err)
	return res
}

// TestLineBottleneck verifies the single-path case.
func (s *EdmondsKarpSuite) TestLineBottleneck() {
	res := s.solve([]int{0}, []int{3}, [][]int64{
		{0, 7, 0, 0},
		{0, 0, 6, 0},
		{0, 0, 0, 8},
		{9, 0, 0, 0},
	})
	require.Equal(s.T(), int64(6), res.Value)
	require.Equal(s.T(), int64(1), res.Stats.Augmentations)
	require.Nil(s.T(), res.Height)
	require.Equal(s.T(), [][]int64{
		{0, 6, 0, 0},
		{-6, 0, 6, 0},
		{0, -6, 0, 6},
		{0, 0, -6, 0},
	}, res.Flow)
}

// TestTwoSourcesTwoSinks verifies the super-source/super-sink reduction.
func (s *EdmondsKarpSuite) TestTwoSourcesTwoSinks() {
	res := s.solve([]int{0, 1}, []int{4, 5}, [][]int64{
		{0, 0, 4, 6, 0, 0},
		{0, 0, 5, 2, 0, 0},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 6, 6},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	require.Equal(s.T(), int64(16), res.Value)
}

// TestAntiparallelEdges verifies flow recovery when both directions carry capacity.
func (s *EdmondsKarpSuite) TestAntiparallelEdges() {
	res := s.solve([]int{0}, []int{3}, [][]int64{
		{0, 5, 5, 0},
		{0, 0, 2, 4},
		{0, 3, 0, 4},
		{0, 0, 0, 0},
	})
	require.Equal(s.T(), int64(8), res.Value)
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			require.Equal(s.T(), res.Flow[u][v], -res.Flow[v][u])
		}
	}
}

// TestInvalidInput verifies validation is shared with PushRelabel.
func (s *EdmondsKarpSuite) TestInvalidInput() {
	c, err := network.FromRows([][]int64{{0, 1}, {0, 0}})
	require.NoError(s.T(), err)

	_, err = flow.EdmondsKarp(c, network.Terminals{Sources: []int{0}, Sinks: []int{0}}, flow.DefaultOptions())
	require.ErrorIs(s.T(), err, network.ErrTerminalOverlap)
}

// TestLookup verifies solver lookup by name.
func (s *EdmondsKarpSuite) TestLookup() {
	for _, name := range []string{flow.AlgorithmPushRelabel, flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic} {
		solver, err := flow.Lookup(name)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), solver)
	}
	_, err := flow.Lookup("ford-fulkerson")
	require.ErrorIs(s.T(), err, flow.ErrUnknownAlgorithm)
}

// Entry point for running the suite.
func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
