package waveindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

func TestBuild_ScenarioB(t *testing.T) {
	require := require.New(t)
	w, err := instance.NewWarehouse(1, 2, []map[int]int{{0: 10}, {0: 10}})
	require.NoError(err)
	b, err := instance.NewBacklog(2, 1, []map[int]int{{0: 4}, {0: 3}}, instance.Wave{LB: 1, UB: 100})
	require.NoError(err)

	idx := waveindex.Build(w, b)
	require.Equal(20, idx.TotalStock(0))
	require.Equal(4, idx.Units(0))
	require.Equal(3, idx.Units(1))
	require.Len(idx.AislesOf(0), 2)
	require.Equal(0, idx.AislesOf(0)[0].AisleID)
	require.True(idx.RequiredAislesSuperset(0)[0])
	require.True(idx.RequiredAislesSuperset(0)[1])
}

func TestBuild_EmptyItemHasNoAisles(t *testing.T) {
	w, err := instance.NewWarehouse(2, 1, []map[int]int{{0: 5}})
	require.NoError(t, err)
	b, err := instance.NewBacklog(1, 2, []map[int]int{{0: 5}}, instance.Wave{LB: 1, UB: 10})
	require.NoError(t, err)

	idx := waveindex.Build(w, b)
	require.Empty(t, idx.AislesOf(1))
	require.Equal(t, 0, idx.TotalStock(1))
}
