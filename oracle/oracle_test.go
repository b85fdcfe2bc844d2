package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

func build(t *testing.T, numItems, numAisles int, stock []map[int]int, numOrders int, demand []map[int]int, wave instance.Wave) (*instance.Warehouse, *instance.Backlog, *oracle.Oracle) {
	t.Helper()
	w, err := instance.NewWarehouse(numItems, numAisles, stock)
	require.NoError(t, err)
	b, err := instance.NewBacklog(numOrders, numItems, demand, wave)
	require.NoError(t, err)
	idx := waveindex.Build(w, b)
	return w, b, oracle.New(w, b, idx)
}

func TestMinimalCover_ScenarioB_PicksSmallerAisleOnTie(t *testing.T) {
	_, _, o := build(t, 1, 2,
		[]map[int]int{{0: 10}, {0: 10}},
		2, []map[int]int{{0: 4}, {0: 3}},
		instance.Wave{LB: 1, UB: 100})

	cover := o.MinimalCover([]int{0, 1})
	require.Equal(t, []int{0}, cover)
}

func TestMinimalCover_ScenarioD_NeedsBothAisles(t *testing.T) {
	_, _, o := build(t, 2, 2,
		[]map[int]int{{0: 5}, {1: 5}},
		2, []map[int]int{{0: 5}, {1: 5}},
		instance.Wave{LB: 10, UB: 10})

	cover := o.MinimalCover([]int{0, 1})
	require.Equal(t, []int{0, 1}, cover)
}

func TestMinimalCover_ScenarioE_StockInfeasibleReturnsNil(t *testing.T) {
	_, _, o := build(t, 1, 1,
		[]map[int]int{{0: 8}},
		2, []map[int]int{{0: 6}, {0: 6}},
		instance.Wave{LB: 12, UB: 100})

	require.False(t, o.StockFeasible([]int{0, 1}))
	require.Nil(t, o.MinimalCover([]int{0, 1}))
}

func TestWithinBounds(t *testing.T) {
	_, _, o := build(t, 1, 1, []map[int]int{{0: 10}}, 1, []map[int]int{{0: 5}}, instance.Wave{LB: 2, UB: 8})
	require.True(t, o.WithinBounds(5))
	require.False(t, o.WithinBounds(1))
	require.False(t, o.WithinBounds(9))
}
