package localsearch

import (
	"math/rand"
	"sort"

	"github.com/fabiolinhares/wavepicker/instance"
)

// Shake draws a random solution from N_k(current) (spec §4.6.2): remove k
// random orders and add k random free orders, then repair towards LB by
// density if the draw undershoots. Returns current unchanged (ok=false) if
// no feasible perturbation of this strength could be repaired.
func (e *Engine) Shake(current instance.Solution, k int, rng *rand.Rand, lb, ub int) (instance.Solution, bool) {
	if k < 1 {
		k = 1
	}
	orders := append([]int{}, current.OrderSet...)
	if k > len(orders) {
		k = len(orders)
	}

	removed := make(map[int]bool, k)
	for len(removed) < k {
		removed[orders[rng.Intn(len(orders))]] = true
	}

	kept := make([]int, 0, len(orders)-k)
	for _, o := range orders {
		if !removed[o] {
			kept = append(kept, o)
		}
	}

	free := make([]int, 0, e.numOrders)
	keptSet := toSet(kept)
	for o := 0; o < e.numOrders; o++ {
		if !keptSet[o] && !removed[o] {
			free = append(free, o)
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	added := 0
	for _, o := range free {
		if added >= k {
			break
		}
		kept = append(kept, o)
		added++
	}

	sol, ok := e.repairToBounds(kept, lb, ub)
	if !ok {
		return current, false
	}
	return sol, true
}

// repairToBounds greedily adds not-yet-chosen orders by density
// (units / newly-required aisles) until orderSet's total units reach lb,
// mirroring innersolver's greedy LB-repair, then builds the canonical
// Solution. ok is false if lb cannot be reached within ub or the result is
// stock-infeasible.
func (e *Engine) repairToBounds(orderSet []int, lb, ub int) (instance.Solution, bool) {
	chosen := toSet(orderSet)
	total := 0
	covered := make(map[int]bool)
	for _, o := range orderSet {
		total += e.idx.Units(o)
		for a := range e.idx.RequiredAislesSuperset(o) {
			covered[a] = true
		}
	}

	if total < lb {
		type densCand struct {
			order   int
			density float64
			units   int
		}
		remaining := make([]densCand, 0)
		for o := 0; o < e.numOrders; o++ {
			if chosen[o] {
				continue
			}
			newAisles := 0
			for a := range e.idx.RequiredAislesSuperset(o) {
				if !covered[a] {
					newAisles++
				}
			}
			units := e.idx.Units(o)
			density := float64(units) * 1e9
			if newAisles > 0 {
				density = float64(units) / float64(newAisles)
			}
			remaining = append(remaining, densCand{o, density, units})
		}
		sort.Slice(remaining, func(i, j int) bool {
			if remaining[i].density != remaining[j].density {
				return remaining[i].density > remaining[j].density
			}
			if remaining[i].units != remaining[j].units {
				return remaining[i].units > remaining[j].units
			}
			return remaining[i].order < remaining[j].order
		})
		for _, c := range remaining {
			if total >= lb {
				break
			}
			if total+c.units > ub {
				continue
			}
			orderSet = append(orderSet, c.order)
			chosen[c.order] = true
			total += c.units
			for a := range e.idx.RequiredAislesSuperset(c.order) {
				covered[a] = true
			}
		}
		if total < lb {
			return instance.Infeasible(), false
		}
	}

	return e.buildSolution(orderSet, lb, ub)
}
