package innersolver

// forbiddenPairs caches, for an instance and wave bound, every order pair
// that can never both be chosen: jointly stock-infeasible, or whose
// combined units already exceed UB. Computed once per BranchAndBound call
// (spec §4.4.2's "Coverage cut"), O(NumOrders^2) in the number of orders.
type forbiddenPairs map[[2]int]bool

func key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (fp forbiddenPairs) has(a, b int) bool {
	return fp[key(a, b)]
}

func buildForbiddenPairs(p Params) forbiddenPairs {
	fp := make(forbiddenPairs)
	for a := 0; a < p.NumOrders; a++ {
		for b := a + 1; b < p.NumOrders; b++ {
			if p.Scorer.Units(a)+p.Scorer.Units(b) > p.UB || !p.Oracle.StockFeasible([]int{a, b}) {
				fp[key(a, b)] = true
			}
		}
	}
	return fp
}

// coverageCutViolated reports whether fixing justFixed into n would put two
// members of a forbidden pair both in status statusIn.
func coverageCutViolated(n node, justFixed int, fp forbiddenPairs) bool {
	for o, st := range n.status {
		if st == statusIn && o != justFixed && fp.has(o, justFixed) {
			return true
		}
	}
	return false
}

// dominates reports whether order a dominates order b under the current
// cover (spec §4.4.2's "Dominance cut"): a needs no more units, a's
// not-yet-covered required aisles are a subset of b's, and a's marginal
// contribution is at least as good.
func dominates(a, b int, covered map[int]bool, p Params) bool {
	if p.Scorer.Units(a) > p.Scorer.Units(b) {
		return false
	}
	reqA := p.Scorer.RequiredAisles(a)
	reqB := p.Scorer.RequiredAisles(b)
	for x := range reqA {
		if covered[x] {
			continue
		}
		if !reqB[x] {
			return false
		}
	}
	contribA, _ := p.Scorer.Contrib(a, p.Lambda, covered)
	contribB, _ := p.Scorer.Contrib(b, p.Lambda, covered)
	return contribA >= contribB
}

// dominanceCutViolated reports whether any currently free order dominates
// the order that was just fixed out of n.
func dominanceCutViolated(n node, justFixedOut int, p Params) bool {
	for o, st := range n.status {
		if st == statusFree && dominates(o, justFixedOut, n.covered, p) {
			return true
		}
	}
	return false
}
