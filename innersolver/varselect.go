package innersolver

import "math"

// selectVariable picks the next free order to branch on, per the strategy
// requested in p.VarSelect (spec §4.4.2). Every strategy breaks ties by
// smaller order id so search order, and therefore pseudo-cost learning, is
// reproducible for a fixed instance and seed.
func selectVariable(n node, p Params, pc *pseudoCostTable) int {
	free := n.freeOrders()
	if len(free) == 0 {
		return -1
	}

	switch p.VarSelect {
	case MostInfeasible:
		return selectMostInfeasible(n, free, p)
	case PseudoCost:
		return selectPseudoCost(free, pc)
	default: // MaxImpact
		return selectMaxImpact(n, free, p)
	}
}

func selectMaxImpact(n node, free []int, p Params) int {
	best, bestVal := free[0], math.Inf(-1)
	for _, o := range free {
		v, _ := p.Scorer.Contrib(o, p.Lambda, n.covered)
		if v > bestVal || (v == bestVal && o < best) {
			best, bestVal = o, v
		}
	}
	return best
}

// selectMostInfeasible min-max normalises Contrib across the free set into
// [0,1] and picks the order closest to 0.5 — the order whose marginal
// appeal is least clear-cut, and therefore most "infeasible" to decide by
// inspection alone.
func selectMostInfeasible(n node, free []int, p Params) int {
	vals := make([]float64, len(free))
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i, o := range free {
		v, _ := p.Scorer.Contrib(o, p.Lambda, n.covered)
		vals[i] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	best, bestDist := free[0], math.Inf(1)
	for i, o := range free {
		norm := 0.5
		if maxV > minV {
			norm = (vals[i] - minV) / (maxV - minV)
		}
		dist := math.Abs(norm - 0.5)
		if dist < bestDist || (dist == bestDist && o < best) {
			best, bestDist = o, dist
		}
	}
	return best
}

func selectPseudoCost(free []int, pc *pseudoCostTable) int {
	best, bestProd := free[0], math.Inf(-1)
	for _, o := range free {
		prod := pc.in[o] * pc.out[o]
		if prod > bestProd || (prod == bestProd && o < best) {
			best, bestProd = o, prod
		}
	}
	return best
}
