package coordinator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/coordinator"
	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/scorer"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

func buildBundle(t *testing.T, numItems, numAisles int, stock []map[int]int, numOrders int, demand []map[int]int, lb, ub int) coordinator.Bundle {
	t.Helper()
	w, err := instance.NewWarehouse(numItems, numAisles, stock)
	require.NoError(t, err)
	b, err := instance.NewBacklog(numOrders, numItems, demand, instance.Wave{LB: lb, UB: ub})
	require.NoError(t, err)
	idx := waveindex.Build(w, b)
	return coordinator.Bundle{
		Warehouse: w,
		Backlog:   b,
		Indices:   idx,
		Oracle:    oracle.New(w, b, idx),
		Scorer:    scorer.New(idx),
	}
}

// TestRun_ScenarioA exercises the full worker pool (spec.md §8 Scenario A:
// trivial single-order instance) end to end.
func TestRun_ScenarioA(t *testing.T) {
	bundle := buildBundle(t,
		2, 1, []map[int]int{{0: 3, 1: 2}},
		1, []map[int]int{{0: 3, 1: 2}},
		1, 100)

	res := coordinator.Run(bundle, coordinator.Options{
		Workers:     2,
		MasterSeed:  7,
		Backend:     innersolver.BackendBranchAndBound,
		MaxRounds:   3,
		Deadline:    time.Now().Add(2 * time.Second),
		LocalSearch: []coordinator.LocalSearchKind{coordinator.LSTabu, coordinator.LSVNS},
	}, nil)

	require.False(t, res.Best.IsInfeasible())
	require.Equal(t, []int{0}, res.Best.OrderSet)
	require.Equal(t, 5, res.Best.TotalUnits)
	require.InDelta(t, 5.0, res.Best.Objective, 1e-9)
}

// TestRun_ScenarioE exercises spec.md §8 Scenario E: stock infeasibility on
// the combination. The coordinator must publish the infeasible marker
// rather than a Solution that violates stock feasibility.
func TestRun_ScenarioE(t *testing.T) {
	bundle := buildBundle(t,
		1, 1, []map[int]int{{0: 8}},
		2, []map[int]int{{0: 6}, {0: 6}},
		12, 12)

	res := coordinator.Run(bundle, coordinator.Options{
		Workers:   2,
		MaxRounds: 2,
		Deadline:  time.Now().Add(2 * time.Second),
	}, nil)

	require.True(t, res.Best.IsInfeasible())
}

// TestRun_PublishedBestNeverRegresses checks spec.md §8's "monotone best"
// property through its end result, across a worker pool larger than the
// two-worker scenario-A case: the published best must be feasible and no
// worse than the best single-order wave (order 0 alone, objective 4.0).
func TestRun_PublishedBestNeverRegresses(t *testing.T) {
	bundle := buildBundle(t,
		1, 2, []map[int]int{{0: 10}, {0: 10}},
		2, []map[int]int{{0: 4}, {0: 3}},
		1, 100)

	res := coordinator.Run(bundle, coordinator.Options{
		Workers:   4,
		MaxRounds: 3,
		Deadline:  time.Now().Add(2 * time.Second),
	}, nil)

	require.False(t, res.Best.IsInfeasible())
	require.GreaterOrEqual(t, res.Best.Objective, 4.0)
}
