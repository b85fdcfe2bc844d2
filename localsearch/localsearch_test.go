package localsearch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

// buildEngine wires a small two-order, two-aisle instance where starting
// from a single order and growing via local search strictly improves the
// objective, matching scorer/oracle scenario B's shared-aisle shape.
func buildEngine(t *testing.T) (*Engine, instance.Solution, int, int) {
	t.Helper()
	w, err := instance.NewWarehouse(1, 2, []map[int]int{{0: 10}, {0: 10}})
	require.NoError(t, err)
	b, err := instance.NewBacklog(2, 1, []map[int]int{{0: 4}, {0: 3}}, instance.Wave{LB: 1, UB: 100})
	require.NoError(t, err)
	idx := waveindex.Build(w, b)
	o := oracle.New(w, b, idx)
	e := NewEngine(idx, o, 2)

	start := instance.NewSolution([]int{0}, []int{0}, 4)
	return e, start, 1, 100
}

func TestEvaluate_AddMoveImproves(t *testing.T) {
	e, start, lb, ub := buildEngine(t)
	mv := Move{Kind: MoveAdd, Add: []int{1}}
	cand, delta := e.Evaluate(start, mv, lb, ub)
	require.Greater(t, delta, 0.0)
	require.Equal(t, []int{0, 1}, cand.OrderSet)
	require.InDelta(t, 7.0, cand.Objective, 1e-9)
}

func TestEvaluate_RejectsOutOfBounds(t *testing.T) {
	e, start, _, _ := buildEngine(t)
	mv := Move{Kind: MoveAdd, Add: []int{1}}
	_, delta := e.Evaluate(start, mv, 1, 3) // UB=3 rejects 4+3=7
	require.Equal(t, math.Inf(-1), delta)
}

func TestAddMoves_EnumeratesFreeOrders(t *testing.T) {
	e, start, _, _ := buildEngine(t)
	moves := e.AddMoves(start)
	require.Len(t, moves, 1)
	require.Equal(t, []int{1}, moves[0].Add)
}

func TestBestImprovement_FindsBothOrders(t *testing.T) {
	e, start, lb, ub := buildEngine(t)
	best := e.BestImprovement(start, lb, ub)
	require.Equal(t, []int{0, 1}, best.OrderSet)
	require.InDelta(t, 7.0, best.Objective, 1e-9)
}

func TestTabuSearch_ImprovesOverStart(t *testing.T) {
	e, start, lb, ub := buildEngine(t)
	best, stats := TabuSearch(e, start, lb, ub, TabuOptions{MaxIter: 50, RNG: rand.New(rand.NewSource(7))})
	require.GreaterOrEqual(t, best.Objective, start.Objective)
	require.Greater(t, stats.Iterations, 0)
}

func TestVNS_ImprovesOverStart(t *testing.T) {
	e, start, lb, ub := buildEngine(t)
	best, stats := VNS(e, start, lb, ub, VNSOptions{MaxIter: 50, RNG: rand.New(rand.NewSource(7))})
	require.GreaterOrEqual(t, best.Objective, start.Objective)
	require.Greater(t, stats.Iterations, 0)
}

func TestILS_ImprovesOverStart(t *testing.T) {
	e, start, lb, ub := buildEngine(t)
	best, stats := ILS(e, start, lb, ub, ILSOptions{MaxIter: 50, RNG: rand.New(rand.NewSource(7))})
	require.GreaterOrEqual(t, best.Objective, start.Objective)
	require.Greater(t, stats.Iterations, 0)
}

func TestMoveKey_OrderInsensitiveWithinGroup(t *testing.T) {
	a := Move{Kind: MoveSwap, Remove: []int{3, 1}, Add: []int{5}}
	b := Move{Kind: MoveSwap, Remove: []int{1, 3}, Add: []int{5}}
	require.Equal(t, a.Key(), b.Key())
}

func TestCorridorReductionMove_ReturnsMinimalUsageAisle(t *testing.T) {
	w, err := instance.NewWarehouse(2, 2, []map[int]int{{0: 10}, {1: 10}})
	require.NoError(t, err)
	b, err := instance.NewBacklog(2, 2, []map[int]int{{0: 4}, {1: 4}}, instance.Wave{LB: 1, UB: 100})
	require.NoError(t, err)
	idx := waveindex.Build(w, b)
	o := oracle.New(w, b, idx)
	e := NewEngine(idx, o, 2)

	sol := instance.NewSolution([]int{0, 1}, []int{0, 1}, 8)
	mv, ok := e.CorridorReductionMove(sol)
	require.True(t, ok)
	require.Equal(t, MoveCorridorReduction, mv.Kind)
	require.Len(t, mv.Remove, 1)
}
