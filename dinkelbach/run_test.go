package dinkelbach

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/scorer"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

func buildParams(t *testing.T, numItems, numAisles int, stock []map[int]int, numOrders int, demand []map[int]int, lb, ub int) innersolver.Params {
	t.Helper()
	w, err := instance.NewWarehouse(numItems, numAisles, stock)
	require.NoError(t, err)
	b, err := instance.NewBacklog(numOrders, numItems, demand, instance.Wave{LB: lb, UB: ub})
	require.NoError(t, err)
	idx := waveindex.Build(w, b)
	return innersolver.Params{
		Oracle:    oracle.New(w, b, idx),
		Scorer:    scorer.New(idx),
		NumOrders: numOrders,
		NumAisles: numAisles,
		LB:        lb,
		UB:        ub,
	}
}

type recordingSink struct {
	offered []instance.Solution
}

func (r *recordingSink) Offer(sol instance.Solution) {
	r.offered = append(r.offered, sol)
}

// TestRun_ScenarioB_Converges checks convergence on an easy instance where
// greedy and B&B agree on the optimum immediately.
func TestRun_ScenarioB_Converges(t *testing.T) {
	p := buildParams(t,
		1, 2, []map[int]int{{0: 10}, {0: 10}},
		2, []map[int]int{{0: 4}, {0: 3}},
		1, 100)

	res, err := Run(p, Options{Backend: innersolver.BackendGreedy})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, []int{0, 1}, res.Best.OrderSet)
	require.InDelta(t, 7.0, res.Best.Objective, 1e-9)
	require.NotEmpty(t, res.Trace)
}

func TestRun_OffersDistinctSolutionsToEliteSink(t *testing.T) {
	p := buildParams(t,
		1, 2, []map[int]int{{0: 10}, {0: 10}},
		2, []map[int]int{{0: 4}, {0: 3}},
		1, 100)

	sink := &recordingSink{}
	res, err := Run(p, Options{Backend: innersolver.BackendGreedy, EliteSink: sink})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.NotEmpty(t, sink.offered)
}

func TestRun_InfeasibleInstanceReturnsError(t *testing.T) {
	p := buildParams(t,
		1, 1, []map[int]int{{0: 8}},
		2, []map[int]int{{0: 6}, {0: 6}},
		12, 100)

	_, err := Run(p, Options{Backend: innersolver.BackendGreedy})
	require.ErrorIs(t, err, instance.ErrInfeasible)
}

func TestRun_BranchAndBoundConverges(t *testing.T) {
	p := buildParams(t,
		2, 2, []map[int]int{{0: 5}, {1: 5}},
		2, []map[int]int{{0: 5}, {1: 5}},
		10, 10)

	res, err := Run(p, Options{Backend: innersolver.BackendBranchAndBound})
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, []int{0, 1}, res.Best.OrderSet)
}

func TestCyclesWithin(t *testing.T) {
	require.True(t, cyclesWithin([]float64{1.0, 1.0001, 0.9999, 1.0}, 1e-2))
	require.False(t, cyclesWithin([]float64{1.0, 2.0, 1.0, 2.0}, 1e-2))
}

func TestDinkelbachBetter(t *testing.T) {
	infeasible := instance.Infeasible()
	a := instance.NewSolution([]int{0}, []int{0}, 5)
	require.True(t, dinkelbachBetter(a, infeasible))
	require.False(t, dinkelbachBetter(infeasible, a))
}
