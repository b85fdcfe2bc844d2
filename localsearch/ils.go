package localsearch

import (
	"math/rand"
	"time"

	"github.com/fabiolinhares/wavepicker/instance"
)

// ILSOptions configures ILS. Zero values fall back to spec defaults.
type ILSOptions struct {
	MaxIter                 int // default 5_000
	PerturbacoesSemMelhoria int // default 20; restart threshold is 2x this
	// PerturbationBase scales the perturbation-intensity growth rate
	// (spec §4.6.3). Default 1.0.
	PerturbationBase float64
	Deadline         time.Time
	RNG              *rand.Rand
}

func (o ILSOptions) maxIter() int {
	if o.MaxIter > 0 {
		return o.MaxIter
	}
	return 5_000
}
func (o ILSOptions) perturbacoesSemMelhoria() int {
	if o.PerturbacoesSemMelhoria > 0 {
		return o.PerturbacoesSemMelhoria
	}
	return 20
}
func (o ILSOptions) perturbationBase() float64 {
	if o.PerturbationBase > 0 {
		return o.PerturbationBase
	}
	return 1.0
}
func (o ILSOptions) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}

// ILSStats reports what happened during one ILS run.
type ILSStats struct {
	Iterations int
	Accepted   int
	Restarts   int
}

// ILS runs Iterated Local Search (spec §4.6.3): start from a local optimum,
// perturb with strength growing in the number of consecutive non-improving
// iterations, accept only strict improvements, and restart from the global
// best with a large perturbation every perturbacoesSemMelhoria*2 failures.
func ILS(e *Engine, start instance.Solution, lb, ub int, opts ILSOptions) (instance.Solution, ILSStats) {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	best := e.BestImprovement(start, lb, ub)
	current := best
	stats := ILSStats{}

	noImprove := 0
	restartThreshold := opts.perturbacoesSemMelhoria() * 2

	for iter := 0; iter < opts.maxIter(); iter++ {
		if opts.deadlineExceeded() {
			break
		}
		stats.Iterations++

		intensity := 1 + int(float64(noImprove)*0.01*opts.perturbationBase()*float64(len(current.OrderSet)))
		if intensity < 1 {
			intensity = 1
		}

		shaken, ok := e.Shake(current, intensity, rng, lb, ub)
		if !ok {
			noImprove++
		} else {
			candidate := e.BestImprovement(shaken, lb, ub)
			if candidate.Objective > current.Objective {
				current = candidate
				stats.Accepted++
				noImprove = 0
				if candidate.Objective > best.Objective {
					best = candidate
				}
			} else {
				noImprove++
			}
		}

		if noImprove > 0 && noImprove%restartThreshold == 0 {
			current = best
			stats.Restarts++
		}
	}

	return best, stats
}
