package innersolver

import (
	"container/heap"
	"math"
	"sort"
	"time"

	"github.com/fabiolinhares/wavepicker/instance"
)

// scoredOrder pairs an order with its contribution value and unit count,
// used by upperBound to rank candidates for its admissible simulation.
type scoredOrder struct {
	order int
	value float64
	units int
}

// objectiveFG is the linearised Dinkelbach objective F(x) - lambda*G(x)
// for a concrete Solution, used to rank incumbents during search.
func objectiveFG(sol instance.Solution, lambda float64) float64 {
	if sol.IsInfeasible() {
		return math.Inf(-1)
	}
	return float64(sol.TotalUnits) - lambda*float64(len(sol.AisleSet))
}

// upperBound computes the admissible bound of spec §4.4.2: start from
// units_in - lambda*|covered|, then simulate adding every free order with
// strictly positive contribution, in descending-contrib order, while units
// stay <= UB. This over-estimates because it ignores the integrality of
// aisle overlaps across combinations of orders, which is exactly what
// makes it a valid upper bound.
func upperBound(n node, p Params) float64 {
	free := n.freeOrders()
	scored := make([]scoredOrder, 0, len(free))
	for _, o := range free {
		v, _ := p.Scorer.Contrib(o, p.Lambda, n.covered)
		if v > 0 {
			scored = append(scored, scoredOrder{o, v, p.Scorer.Units(o)})
		}
	}
	sort.Slice(scored, func(i, j int) bool { return scoredOrderLess(scored[i], scored[j]) })

	bound := float64(n.unitsIn) - p.Lambda*float64(len(n.covered))
	units := n.unitsIn
	simCovered := make(map[int]bool, len(n.covered))
	for a := range n.covered {
		simCovered[a] = true
	}
	for _, c := range scored {
		if units+c.units > p.UB {
			continue
		}
		v, _ := p.Scorer.Contrib(c.order, p.Lambda, simCovered)
		if v <= 0 {
			continue
		}
		bound += v
		units += c.units
		for a := range p.Scorer.RequiredAisles(c.order) {
			simCovered[a] = true
		}
	}
	return bound
}

func scoredOrderLess(a, b scoredOrder) bool {
	if a.value != b.value {
		return a.value > b.value
	}
	if a.units != b.units {
		return a.units > b.units
	}
	return a.order < b.order
}

// lowerBoundSolution builds the restricted-greedy solution of spec
// §4.4.2's "Lower bound": greedy over fixed_in ∪ free, forced to keep
// fixed_in, ignoring fixed_out.
func lowerBoundSolution(n node, p Params) instance.Solution {
	return constructGreedy(p, n.freeOrders(), n.fixedInOrders(), n.covered, n.unitsIn)
}

// BranchAndBound runs the best-first branch-and-bound search of spec
// §4.4.2: a container/heap priority queue ordered by upper bound, with
// coverage and dominance cuts and a pluggable variable-selection strategy.
// It honours p.Deadline and always returns the best feasible solution
// recorded, even on timeout.
func BranchAndBound(p Params) (instance.Solution, Stats, error) {
	start := time.Now()
	stats := Stats{}

	fp := buildForbiddenPairs(p)
	pc := newPseudoCostTable(p.NumOrders)

	root := newRootNode(p)
	root.boundUp = upperBound(root, p)

	pq := &nodeHeap{root}
	heap.Init(pq)

	incumbent := instance.Infeasible()
	incumbentValue := math.Inf(-1)

	for pq.Len() > 0 {
		if p.deadlineExceeded() {
			stats.TimedOut = true
			break
		}

		n := heap.Pop(pq).(node)
		stats.NodesExplored++

		if n.boundUp <= incumbentValue {
			stats.PrunedByBound++
			continue
		}

		if cand := lowerBoundSolution(n, p); !cand.IsInfeasible() {
			if v := objectiveFG(cand, p.Lambda); v > incumbentValue {
				incumbent, incumbentValue = cand, v
			}
		}

		branchOn := selectVariable(n, p, pc)
		if branchOn == -1 {
			continue
		}

		// "in" child.
		inChild := n.clone()
		inChild.status[branchOn] = statusIn
		inChild.unitsIn += p.Scorer.Units(branchOn)
		for a := range p.Scorer.RequiredAisles(branchOn) {
			inChild.covered[a] = true
		}

		inPruned := false
		if inChild.unitsIn > p.UB {
			inPruned = true
			stats.PrunedByInfeasibility++
		} else if !p.Oracle.StockFeasible(inChild.fixedInOrders()) {
			inPruned = true
			stats.PrunedByInfeasibility++
		} else if coverageCutViolated(inChild, branchOn, fp) {
			inPruned = true
			stats.PrunedByCoverageCut++
		}
		var inBound float64
		if !inPruned {
			inBound = upperBound(inChild, p)
			inChild.boundUp = inBound
			if inBound > incumbentValue {
				heap.Push(pq, inChild)
			} else {
				inPruned = true
				stats.PrunedByBound++
			}
		}

		// "out" child.
		outChild := n.clone()
		outChild.status[branchOn] = statusOut
		outBound := upperBound(outChild, p)
		outChild.boundUp = outBound

		outPruned := false
		if dominanceCutViolated(outChild, branchOn, p) {
			outPruned = true
			stats.PrunedByDominanceCut++
		} else if outBound <= incumbentValue {
			outPruned = true
			stats.PrunedByBound++
		} else {
			heap.Push(pq, outChild)
		}

		if p.VarSelect == PseudoCost {
			if !inPruned {
				pc.observeIn(branchOn, n.boundUp-inBound)
			}
			if !outPruned {
				pc.observeOut(branchOn, n.boundUp-outBound)
			}
		}
	}

	stats.Elapsed = time.Since(start)
	if incumbent.IsInfeasible() {
		if stats.TimedOut {
			return instance.Infeasible(), stats, instance.ErrTimeout
		}
		return instance.Infeasible(), stats, instance.ErrInfeasible
	}
	return incumbent, stats, nil
}
