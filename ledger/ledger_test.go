package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabiolinhares/wavepicker/instance"
)

func TestOffer_MonotoneBestNeverRegresses(t *testing.T) {
	l := New(Options{})
	l.Offer(instance.NewSolution([]int{0}, []int{0}, 5))
	require.InDelta(t, 5.0, l.Best().Objective, 1e-9)

	l.Offer(instance.NewSolution([]int{0, 1}, []int{0}, 3))
	require.InDelta(t, 5.0, l.Best().Objective, 1e-9, "a worse solution must never replace Best")

	l.Offer(instance.NewSolution([]int{0, 1, 2}, []int{0}, 9))
	require.InDelta(t, 9.0, l.Best().Objective, 1e-9)
}

func TestOffer_IgnoresInfeasible(t *testing.T) {
	l := New(Options{})
	l.Offer(instance.Infeasible())
	require.True(t, l.Best().IsInfeasible())
}

func TestAdmitElite_RejectsNearDuplicates(t *testing.T) {
	l := New(Options{MinDiversity: 0.3})
	l.Offer(instance.NewSolution([]int{0, 1, 2, 3}, []int{0}, 10))
	l.Offer(instance.NewSolution([]int{0, 1, 2}, []int{0}, 9)) // jaccard distance 0.25 < 0.3
	require.Len(t, l.Elite(), 1)

	l.Offer(instance.NewSolution([]int{5, 6, 7, 8}, []int{1}, 20)) // fully disjoint
	require.Len(t, l.Elite(), 2)
}

func TestAdmitElite_ObjectiveExceedsWorstAdmitsDespiteLowDiversity(t *testing.T) {
	l := New(Options{KElite: 2, MinDiversity: 0.9})
	l.Offer(instance.NewSolution([]int{0, 1}, []int{0}, 5))    // fully diverse from nothing yet: admitted
	l.Offer(instance.NewSolution([]int{2, 3}, []int{1}, 3))    // jaccard distance 1.0 from {0,1}: admitted
	require.Len(t, l.Elite(), 2)

	// jaccard distance to {0,1} is 1 - 2/3 = 0.33, well under MinDiversity,
	// but its objective (10) strictly exceeds the pool's worst entry (3):
	// the OR-admission rule must still let it in, displacing the worst.
	l.Offer(instance.NewSolution([]int{0, 1, 4}, []int{0}, 10))

	elite := l.Elite()
	require.Len(t, elite, 2)
	require.InDelta(t, 10.0, elite[0].Objective, 1e-9)
	require.InDelta(t, 5.0, elite[1].Objective, 1e-9)
}

func TestElite_BoundedByKElite(t *testing.T) {
	l := New(Options{KElite: 2, MinDiversity: 0.9})
	l.Offer(instance.NewSolution([]int{0}, []int{0}, 1))
	l.Offer(instance.NewSolution([]int{1}, []int{0}, 2))
	l.Offer(instance.NewSolution([]int{2}, []int{0}, 3))
	require.Len(t, l.Elite(), 2)
	// The pool keeps the highest-objective entries.
	for _, s := range l.Elite() {
		require.GreaterOrEqual(t, s.Objective, 2.0)
	}
}

func TestOffer_ConcurrentIsRaceFree(t *testing.T) {
	l := New(Options{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Offer(instance.NewSolution([]int{i}, []int{i % 3}, i+1))
		}(i)
	}
	wg.Wait()
	require.False(t, l.Best().IsInfeasible())
}
