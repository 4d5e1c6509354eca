// SPDX-License-Identifier: MIT
package network_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/network"
)

func TestBuildPath(t *testing.T) {
	c, err := network.Build(4, []network.BuilderOption{
		network.WithCapacityFn(network.ConstantCapacity(5)),
	}, network.Path())
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 5, 0, 0},
		{0, 0, 5, 0},
		{0, 0, 0, 5},
		{0, 0, 0, 0},
	}, c.Rows())

	_, err = network.Build(1, nil, network.Path())
	require.ErrorIs(t, err, network.ErrBadSize)
}

func TestBuildLayered(t *testing.T) {
	c, err := network.Build(5, nil, network.Layered(2, 1, 2))
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}, c.Rows())
	require.Equal(t, network.Terminals{Sources: []int{0, 1}, Sinks: []int{3, 4}}, network.LayeredTerminals(2, 1, 2))

	_, err = network.Build(5, nil, network.Layered(3))
	require.ErrorIs(t, err, network.ErrBadSize)
	_, err = network.Build(5, nil, network.Layered(2, 0, 2))
	require.ErrorIs(t, err, network.ErrBadSize)
	_, err = network.Build(3, nil, network.Layered(2, 2))
	require.ErrorIs(t, err, network.ErrIndexOutOfRange)
}

func TestBuildCompleteAggregatesWithEdge(t *testing.T) {
	c, err := network.Build(3, nil, network.Complete(), network.Edge(0, 1, 4))
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 5, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, c.Rows())

	_, err = network.Build(3, nil, network.Edge(0, 3, 1))
	require.ErrorIs(t, err, network.ErrIndexOutOfRange)
	_, err = network.Build(3, nil, nil)
	require.ErrorIs(t, err, network.ErrInvalidInput)
}

func TestBuildRandomSparseDeterministic(t *testing.T) {
	opts := func() []network.BuilderOption {
		return []network.BuilderOption{
			network.WithSeed(7),
			network.WithCapacityFn(network.UniformCapacity(1, 9)),
		}
	}
	a, err := network.Build(12, opts(), network.RandomSparse(0.3))
	require.NoError(t, err)
	b, err := network.Build(12, opts(), network.RandomSparse(0.3))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	for u, row := range a.Rows() {
		require.Zero(t, row[u], "no self-loops")
		for _, w := range row {
			require.True(t, w == 0 || (w >= 1 && w <= 9))
		}
	}
}

func TestBuildRandomSparseEdgeCases(t *testing.T) {
	_, err := network.Build(4, nil, network.RandomSparse(0.5))
	require.ErrorIs(t, err, network.ErrNeedRandSource)
	_, err = network.Build(4, nil, network.RandomSparse(1.5))
	require.ErrorIs(t, err, network.ErrInvalidProbability)

	// p ∈ {0,1} needs no RNG.
	none, err := network.Build(3, nil, network.RandomSparse(0))
	require.NoError(t, err)
	require.Equal(t, int64(0), none.OutSum(0))
	all, err := network.Build(3, nil, network.RandomSparse(1))
	require.NoError(t, err)
	require.Equal(t, int64(2), all.OutSum(0))
}

func TestCapacityFns(t *testing.T) {
	require.Equal(t, int64(3), network.ConstantCapacity(3)(nil))
	require.Equal(t, int64(2), network.UniformCapacity(2, 8)(nil), "no RNG yields min")

	r := rand.New(rand.NewSource(1))
	fn := network.UniformCapacity(2, 4)
	for i := 0; i < 100; i++ {
		w := fn(r)
		require.True(t, w >= 2 && w <= 4)
	}

	require.Panics(t, func() { network.ConstantCapacity(-1) })
	require.Panics(t, func() { network.UniformCapacity(3, 2) })
	require.Panics(t, func() { network.WithRand(nil) })
	require.Panics(t, func() { network.WithCapacityFn(nil) })
}
