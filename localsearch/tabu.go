package localsearch

import (
	"math"
	"math/rand"
	"time"

	"github.com/fabiolinhares/wavepicker/instance"
)

var negInf = math.Inf(-1)

// tabuMode is the Normal/Diversification/Intensification machine of spec
// §4.6.1.
type tabuMode int8

const (
	modeNormal tabuMode = iota
	modeDiversification
	modeIntensification
)

// TabuOptions configures TabuSearch. Zero values fall back to spec §4.6.1's
// documented defaults.
type TabuOptions struct {
	TBase                  int // default 10
	MaxNoImprove           int // default 100 ("MAX_NO_IMPROV")
	CyclesDiversification  int // default 10 ("ciclosDiversificacao")
	CyclesIntensification  int // default 5  ("ciclosIntensificacao")
	MaxIter                int // default 10_000
	Deadline               time.Time
	RNG                    *rand.Rand
}

func (o TabuOptions) tBase() int {
	if o.TBase > 0 {
		return o.TBase
	}
	return 10
}
func (o TabuOptions) maxNoImprove() int {
	if o.MaxNoImprove > 0 {
		return o.MaxNoImprove
	}
	return 100
}
func (o TabuOptions) cyclesDiversification() int {
	if o.CyclesDiversification > 0 {
		return o.CyclesDiversification
	}
	return 10
}
func (o TabuOptions) cyclesIntensification() int {
	if o.CyclesIntensification > 0 {
		return o.CyclesIntensification
	}
	return 5
}
func (o TabuOptions) maxIter() int {
	if o.MaxIter > 0 {
		return o.MaxIter
	}
	return 10_000
}
func (o TabuOptions) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}

// TabuStats reports what happened during one TabuSearch run.
type TabuStats struct {
	Iterations      int
	Accepted        int
	AspirationHits  int
	DiversifyEvents int
	IntensifyEvents int
}

// TabuSearch runs the tabu-search metaheuristic of spec §4.6.1 starting
// from start, returning the best Solution it found.
func TabuSearch(e *Engine, start instance.Solution, lb, ub int, opts TabuOptions) (instance.Solution, TabuStats) {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	current := start
	best := start
	stats := TabuStats{}

	tabuUntil := make(map[string]int)
	frequency := make(map[int]int)
	recency := make(map[int]int)

	mode := modeNormal
	noImprove := 0
	modeCycles := 0

	for iter := 0; iter < opts.maxIter(); iter++ {
		if opts.deadlineExceeded() {
			break
		}
		stats.Iterations++

		candidates := append(e.AddMoves(current), e.RemoveMoves(current)...)
		candidates = append(candidates, e.SwapMoves(current)...)
		candidates = append(candidates, e.ChainMoves(current, rng)...)
		if mv, ok := e.CorridorReductionMove(current); ok {
			candidates = append(candidates, mv)
		}

		bestMove, bestCand, bestDelta := Move{}, instance.Infeasible(), mathInfNeg()
		found := false
		for _, mv := range candidates {
			cand, delta := e.Evaluate(current, mv, lb, ub)
			if delta == mathInfNeg() {
				continue
			}
			tabooed := tabuUntil[mv.Key()] > iter
			aspirated := cand.Objective > best.Objective
			if tabooed && !aspirated {
				continue
			}
			if mode == modeDiversification {
				delta = diversificationScore(mv, frequency)
			}
			if delta > bestDelta {
				bestMove, bestCand, bestDelta, found = mv, cand, delta, true
				if tabooed && aspirated {
					stats.AspirationHits++
				}
			}
		}
		if !found {
			break
		}

		current = bestCand
		stats.Accepted++
		tabuUntil[bestMove.Key()] = iter + opts.tBase() + rng.Intn(6)
		for _, o := range touchedOrders(bestMove) {
			frequency[o]++
			recency[o] = iter
		}

		if current.Objective > best.Objective {
			best = current
			noImprove = 0
		} else {
			noImprove++
		}

		modeCycles++
		switch mode {
		case modeNormal:
			if noImprove >= opts.maxNoImprove() {
				mode = modeDiversification
				modeCycles = 0
				current = best
				stats.DiversifyEvents++
			}
		case modeDiversification:
			if modeCycles >= opts.cyclesDiversification() {
				mode = modeIntensification
				modeCycles = 0
				current = best
				stats.IntensifyEvents++
			}
		case modeIntensification:
			if modeCycles >= opts.cyclesIntensification() {
				mode = modeNormal
				modeCycles = 0
				noImprove = 0
				current = best
			}
		}
	}

	return best, stats
}

// diversificationScore re-ranks a move in Diversification mode to prefer
// moves touching least-frequent orders (spec §4.6.1's long-term memory),
// rather than raw objective delta.
func diversificationScore(mv Move, frequency map[int]int) float64 {
	touched := touchedOrders(mv)
	if len(touched) == 0 {
		return 0
	}
	total := 0
	for _, o := range touched {
		total += frequency[o]
	}
	return -float64(total) / float64(len(touched))
}

// touchedOrders returns every order mv adds or removes, in a freshly
// allocated slice so callers never risk aliasing mv.Add/mv.Remove's backing
// arrays.
func touchedOrders(mv Move) []int {
	out := make([]int, 0, len(mv.Add)+len(mv.Remove))
	out = append(out, mv.Add...)
	out = append(out, mv.Remove...)
	return out
}

func mathInfNeg() float64 { return negInf }
