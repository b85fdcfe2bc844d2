package innersolver

import (
	"sort"

	"github.com/fabiolinhares/wavepicker/instance"
)

// Greedy runs the single-pass constructive heuristic of spec §4.4.1 over
// every order.
func Greedy(p Params) (instance.Solution, error) {
	candidates := make([]int, p.NumOrders)
	for o := range candidates {
		candidates[o] = o
	}
	sol := constructGreedy(p, candidates, nil, map[int]bool{}, 0)
	if sol.IsInfeasible() {
		return instance.Infeasible(), instance.ErrInfeasible
	}
	return sol, nil
}

// constructGreedy is the shared constructive core behind both the
// top-level Greedy back-end and BranchAndBound's restricted-greedy lower
// bound (spec §4.4.2's "Build the greedy solution restricted to orders in
// fixed_in ∪ free"). candidates are the orders still free to choose from;
// baseOrders/baseCovered/baseUnits seed the construction with orders
// already fixed in.
func constructGreedy(p Params, candidates []int, baseOrders []int, baseCovered map[int]bool, baseUnits int) instance.Solution {
	type cand struct {
		order   int
		contrib float64
		units   int
	}

	// 1) contrib(o, λ, baseCovered) for each candidate, keep strictly positive.
	scored := make([]cand, 0, len(candidates))
	for _, o := range candidates {
		v, _ := p.Scorer.Contrib(o, p.Lambda, baseCovered)
		if v > 0 {
			scored = append(scored, cand{o, v, p.Scorer.Units(o)})
		}
	}

	// 2) Sort descending by contrib; tie larger units; tie smaller id.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].contrib != scored[j].contrib {
			return scored[i].contrib > scored[j].contrib
		}
		if scored[i].units != scored[j].units {
			return scored[i].units > scored[j].units
		}
		return scored[i].order < scored[j].order
	})

	orderSet := append([]int{}, baseOrders...)
	covered := make(map[int]bool, len(baseCovered))
	for a := range baseCovered {
		covered[a] = true
	}
	totalUnits := baseUnits
	chosen := make(map[int]bool, len(orderSet))
	for _, o := range orderSet {
		chosen[o] = true
	}

	// 3) Iterate, accumulating units/covered/objective.
	for _, c := range scored {
		if totalUnits+c.units > p.UB {
			continue
		}
		effValue, _ := p.Scorer.Contrib(c.order, p.Lambda, covered)
		if effValue > 0 || totalUnits < p.LB {
			orderSet = append(orderSet, c.order)
			chosen[c.order] = true
			totalUnits += c.units
			for a := range p.Scorer.RequiredAisles(c.order) {
				covered[a] = true
			}
		}
	}

	// 4) LB repair: re-score remaining orders by density relative to covered.
	if totalUnits < p.LB {
		type densCand struct {
			order   int
			density float64
			units   int
		}
		remaining := make([]densCand, 0)
		for _, o := range candidates {
			if chosen[o] {
				continue
			}
			newAisles := 0
			for a := range p.Scorer.RequiredAisles(o) {
				if !covered[a] {
					newAisles++
				}
			}
			units := p.Scorer.Units(o)
			var density float64
			if newAisles == 0 {
				density = float64(units) * 1e9 // no new aisle cost: maximal priority
			} else {
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
			if totalUnits >= p.LB {
				break
			}
			if totalUnits+c.units > p.UB {
				continue
			}
			orderSet = append(orderSet, c.order)
			chosen[c.order] = true
			totalUnits += c.units
			for a := range p.Scorer.RequiredAisles(c.order) {
				covered[a] = true
			}
		}
		if totalUnits < p.LB {
			return instance.Infeasible()
		}
	}

	// 5) Finalise the aisle set and recompute the objective.
	if len(orderSet) == 0 {
		return instance.Infeasible()
	}
	aisleSet := p.Oracle.MinimalCover(orderSet)
	if aisleSet == nil {
		return instance.Infeasible()
	}
	return instance.NewSolution(orderSet, aisleSet, totalUnits)
}
