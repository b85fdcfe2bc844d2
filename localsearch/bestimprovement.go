package localsearch

import (
	"github.com/fabiolinhares/wavepicker/instance"
)

// BestImprovement runs VNS's "simple Add/Remove best-improvement local
// search" (spec §4.6.2) to a local optimum: repeatedly apply the
// best-scoring Add or Remove move until none improves.
func (e *Engine) BestImprovement(current instance.Solution, lb, ub int) instance.Solution {
	best := current
	for {
		candMoves := append(e.AddMoves(best), e.RemoveMoves(best)...)
		improved := false
		bestCand := best
		bestDelta := 0.0
		for _, mv := range candMoves {
			cand, delta := e.Evaluate(best, mv, lb, ub)
			if delta > bestDelta {
				bestDelta, bestCand, improved = delta, cand, true
			}
		}
		if !improved {
			return best
		}
		best = bestCand
	}
}
