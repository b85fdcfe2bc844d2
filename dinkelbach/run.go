package dinkelbach

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/internal/xrand"
)

// IterationRecord captures one outer-loop step, exposed so callers and
// package report can render the convergence trace spec §4.5 requires.
type IterationRecord struct {
	Iter      int
	Lambda    float64
	Objective float64
	FK        int // total units of the iteration's solution
	GK        int // aisle count of the iteration's solution
}

// Result is everything Run reports about one outer-loop run.
type Result struct {
	Best             instance.Solution
	Converged        bool
	Trace            []IterationRecord
	OscillationCount int
	CycleCount       int
	Elapsed          time.Duration
	Iterations       int
	// BestStats is the inner-solver Stats from the iteration that produced
	// Best (spec §4.4's node/pruning counters), surfaced so callers (report.
	// FullTable) can render search diagnostics alongside the convergence
	// trace.
	BestStats innersolver.Stats
}

// Run executes the Dinkelbach outer loop of spec §4.5 against base, mutating
// only its own local Lambda field per iteration. base.Deadline, if zero, is
// set from opts.Deadline for every inner-solver call; a non-zero
// base.Deadline already set by the caller is left untouched.
func Run(base innersolver.Params, opts Options) (Result, error) {
	start := time.Now()
	res := Result{}

	if base.Deadline.IsZero() {
		base.Deadline = opts.Deadline
	}

	lambda0, err := initialLambda(base)
	if err != nil {
		res.Elapsed = time.Since(start)
		return res, err
	}

	lambda := lambda0
	lambdaHistory := []float64{lambda}
	seen := make(map[string]bool)
	eps := opts.epsilon()

	var lastErr error
	for k := 0; k < opts.maxIter(); k++ {
		if opts.deadlineExceeded() {
			lastErr = instance.ErrTimeout
			break
		}

		p := base
		p.Lambda = lambda
		p.VarSelect = opts.VarSelect

		sol, stats, err := innersolver.Solve(opts.Backend, p)
		if err != nil {
			lastErr = err
			if res.Best.IsInfeasible() {
				// Never converged even once: nothing to publish.
				break
			}
			// A later, harder lambda went infeasible after earlier
			// iterations already found something: keep the best found
			// so far rather than discarding it.
			break
		}

		res.Iterations = k + 1
		key := solutionKey(sol)
		if !seen[key] {
			seen[key] = true
			if opts.EliteSink != nil {
				opts.EliteSink.Offer(sol)
			}
		}
		if dinkelbachBetter(sol, res.Best) {
			res.Best = sol
			res.BestStats = stats
		}

		gk := len(sol.AisleSet)
		if gk < 1 {
			gk = 1
		}
		nextLambda := float64(sol.TotalUnits) / float64(gk)

		res.Trace = append(res.Trace, IterationRecord{
			Iter:      k,
			Lambda:    lambda,
			Objective: sol.Objective,
			FK:        sol.TotalUnits,
			GK:        len(sol.AisleSet),
		})

		if math.Abs(nextLambda-lambda) < eps {
			res.Converged = true
			lastErr = nil
			break
		}

		nextLambda = applyPathologyGuards(&res, lambdaHistory, lambda, nextLambda, eps, opts)
		lambdaHistory = append(lambdaHistory, nextLambda)
		lambda = nextLambda
	}

	res.Elapsed = time.Since(start)
	if res.Best.IsInfeasible() {
		if lastErr != nil {
			return res, lastErr
		}
		return res, instance.ErrInfeasible
	}
	return res, nil
}

// initialLambda implements spec §4.5 step 1: run the greedy back-end at
// lambda = 0; if feasible, seed lambda0 from its objective, else fall back
// to the documented constant 0.1.
func initialLambda(base innersolver.Params) (float64, error) {
	p := base
	p.Lambda = 0
	sol, err := innersolver.Greedy(p)
	if err != nil || sol.IsInfeasible() {
		return 0.1, nil
	}
	return sol.Objective, nil
}

// applyPathologyGuards implements spec §4.5 step 4: oscillation damping and
// cycle-escape jitter, tracked via res.OscillationCount/CycleCount. history
// holds every lambda estimate produced so far, with history[len-1] == lambdaK
// (the value the current iteration just used).
func applyPathologyGuards(res *Result, history []float64, lambdaK, proposed, eps float64, opts Options) float64 {
	n := len(history)

	if n >= 3 {
		lambdaKMinus1 := history[n-2]
		lambdaKMinus2 := history[n-3]
		if math.Abs(lambdaK-lambdaKMinus2) < eps && math.Abs(lambdaK-lambdaKMinus1) > eps {
			res.OscillationCount++
			return (lambdaK + lambdaKMinus1) / 2
		}
	}

	if n >= cycleWindow {
		window := history[n-cycleWindow:]
		if cyclesWithin(window, eps) {
			res.CycleCount++
			jitter := jitterFrac
			if opts.RNG != nil {
				jitter = xrand.JitterFraction(opts.RNG, jitterFrac)
			}
			return lambdaK * (1 + jitter)
		}
	}

	return proposed
}

// cyclesWithin reports whether every value in window lies within eps of
// window[0], i.e. the last cycleWindow lambda estimates have effectively
// repeated without the loop having already converged.
func cyclesWithin(window []float64, eps float64) bool {
	for _, v := range window[1:] {
		if math.Abs(v-window[0]) >= eps {
			return false
		}
	}
	return true
}

// dinkelbachBetter reports whether candidate should replace current as the
// running incumbent: strictly higher objective, or current is still the
// infeasible marker.
func dinkelbachBetter(candidate, current instance.Solution) bool {
	if current.IsInfeasible() {
		return !candidate.IsInfeasible()
	}
	return candidate.Objective > current.Objective
}

// solutionKey renders a Solution's order set as a stable string key, used
// to detect "distinct S encountered" for the elite-pool offer in step 5.
func solutionKey(sol instance.Solution) string {
	if sol.IsInfeasible() {
		return ""
	}
	parts := make([]string, len(sol.OrderSet))
	for i, o := range sol.OrderSet {
		parts[i] = strconv.Itoa(o)
	}
	return fmt.Sprintf("o:%s", strings.Join(parts, ","))
}
