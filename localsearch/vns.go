package localsearch

import (
	"math/rand"
	"time"

	"github.com/fabiolinhares/wavepicker/instance"
)

// DefaultKMax is the number of VNS neighbourhood structures (spec §4.6.2).
const DefaultKMax = 4

// VNSOptions configures VNS. Zero values fall back to spec defaults.
type VNSOptions struct {
	KMax     int // default DefaultKMax
	MaxIter  int // default 5_000
	Deadline time.Time
	RNG      *rand.Rand
}

func (o VNSOptions) kMax() int {
	if o.KMax > 0 {
		return o.KMax
	}
	return DefaultKMax
}
func (o VNSOptions) maxIter() int {
	if o.MaxIter > 0 {
		return o.MaxIter
	}
	return 5_000
}
func (o VNSOptions) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}

// VNSStats reports what happened during one VNS run.
type VNSStats struct {
	Iterations int
	Accepted   int
}

// VNS runs Variable Neighbourhood Search (spec §4.6.2): shake into N_k,
// apply Add/Remove best-improvement local search, accept if improved and
// reset k=1, else advance k (wrapping after KMax).
func VNS(e *Engine, start instance.Solution, lb, ub int, opts VNSOptions) (instance.Solution, VNSStats) {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	best := start
	stats := VNSStats{}
	k := 1

	for iter := 0; iter < opts.maxIter(); iter++ {
		if opts.deadlineExceeded() {
			break
		}
		stats.Iterations++

		shaken, ok := e.Shake(best, k, rng, lb, ub)
		if !ok {
			k = wrapK(k+1, opts.kMax())
			continue
		}

		polished := e.BestImprovement(shaken, lb, ub)
		if polished.Objective > best.Objective {
			best = polished
			stats.Accepted++
			k = 1
		} else {
			k = wrapK(k+1, opts.kMax())
		}
	}

	return best, stats
}

func wrapK(k, kMax int) int {
	if k > kMax {
		return 1
	}
	return k
}
