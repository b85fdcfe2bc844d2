package coordinator

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/fabiolinhares/wavepicker/dinkelbach"
	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/internal/xrand"
	"github.com/fabiolinhares/wavepicker/ledger"
	"github.com/fabiolinhares/wavepicker/localsearch"
)

// workerResult is what one worker goroutine reports back to Run.
type workerResult struct {
	runID uuid.UUID
	best  instance.Solution
	// dink is the best-performing Dinkelbach round this worker ran (by
	// dink.Best.Objective), carried so Run can surface a representative
	// convergence trace and B&B Stats to report.FullTable.
	dink dinkelbach.Result
	err  error
}

// runWorker implements spec §4.7's per-worker steps 2-4 plus the
// diversification-exchange coordination of §4.7's "Coordination" section.
func runWorker(id int, bundle Bundle, opts Options, l *ledger.Ledger, log *slog.Logger, logLimiter *rate.Limiter) workerResult {
	runID := uuid.New()
	rng := xrand.Derive(opts.MasterSeed, uint64(id))

	base := innersolver.Params{
		Oracle:    bundle.Oracle,
		Scorer:    bundle.Scorer,
		NumOrders: bundle.Backlog.NumOrders,
		NumAisles: bundle.Warehouse.NumAisles,
		LB:        bundle.Backlog.Wave.LB,
		UB:        bundle.Backlog.Wave.UB,
		VarSelect: opts.VarSelect,
	}

	engine := localsearch.NewEngine(bundle.Indices, bundle.Oracle, bundle.Backlog.NumOrders)
	kinds := opts.localSearchKinds()
	lsKind := kinds[id%len(kinds)]

	current, err := diversifiedStart(base, engine, rng, opts)
	if err != nil {
		return workerResult{runID: runID, best: instance.Infeasible(), err: err}
	}

	var repDink dinkelbach.Result
	for round := 0; round < opts.maxRounds(); round++ {
		if opts.deadlineExceeded() {
			break
		}

		dinkRes, dErr := dinkelbach.Run(base, dinkelbach.Options{
			Backend:   opts.Backend,
			VarSelect: opts.VarSelect,
			Deadline:  innerDeadline(opts),
			RNG:       rng,
			EliteSink: l,
		})
		if dErr == nil {
			if repDink.Best.IsInfeasible() || dinkRes.Best.Objective > repDink.Best.Objective {
				repDink = dinkRes
			}
			if dinkRes.Best.Objective > current.Objective {
				current = dinkRes.Best
			}
		}

		current = polish(engine, current, base.LB, base.UB, lsKind, opts, rng)
		l.Offer(current)

		if round%opts.commInterval() == 0 {
			if peek := l.Best(); !peek.IsInfeasible() && rng.Float64() < opts.adoptProbability() {
				current = peek
			}
		}

		if logLimiter != nil && logLimiter.Allow() {
			log.Info("coordinator progress",
				"worker", id, "run_id", runID.String(), "round", round,
				"objective", current.Objective)
		}
	}

	return workerResult{runID: runID, best: current, dink: repDink, err: nil}
}

// diversifiedStart implements spec §4.7 step 3: a greedy construction
// perturbed by the worker's own RNG.
func diversifiedStart(base innersolver.Params, engine *localsearch.Engine, rng *rand.Rand, opts Options) (instance.Solution, error) {
	p := base
	p.Lambda = 0
	sol, err := innersolver.Greedy(p)
	if err != nil {
		return instance.Infeasible(), err
	}
	perturbed, ok := engine.Shake(sol, 1+rng.Intn(3), rng, base.LB, base.UB)
	if !ok {
		return sol, nil
	}
	return perturbed, nil
}

// innerDeadline bounds one Dinkelbach round's inner-solver calls by
// opts.InnerSolverTimeBudget (spec §4.4's T_inner), never looser than the
// coordinator's overall Deadline.
func innerDeadline(opts Options) time.Time {
	d := opts.Deadline
	if opts.InnerSolverTimeBudget > 0 {
		budgetDeadline := time.Now().Add(opts.InnerSolverTimeBudget)
		if d.IsZero() || budgetDeadline.Before(d) {
			d = budgetDeadline
		}
	}
	return d
}

// polish runs the requested metaheuristic for a short, round-scale burst
// bounded by the worker's remaining time, so control returns to the
// coordination loop frequently enough to honour CommInterval. Tuning
// parameters come from Options, falling back to package localsearch's own
// defaults when left at zero.
func polish(engine *localsearch.Engine, current instance.Solution, lb, ub int, kind LocalSearchKind, opts Options, rng *rand.Rand) instance.Solution {
	roundDeadline := opts.Deadline
	if d, ok := shortDeadline(roundDeadline); ok {
		roundDeadline = d
	}
	switch kind {
	case LSVNS:
		best, _ := localsearch.VNS(engine, current, lb, ub, localsearch.VNSOptions{
			KMax: opts.VNSKMax, MaxIter: 200, RNG: rng, Deadline: roundDeadline,
		})
		return pickBetter(current, best)
	case LSILS:
		best, _ := localsearch.ILS(engine, current, lb, ub, localsearch.ILSOptions{
			MaxIter: 200, PerturbationBase: opts.ILSPerturbationBase, RNG: rng, Deadline: roundDeadline,
		})
		return pickBetter(current, best)
	default:
		best, _ := localsearch.TabuSearch(engine, current, lb, ub, localsearch.TabuOptions{
			TBase:                 opts.TabuBaseTenure,
			MaxNoImprove:          opts.TabuMaxNoImprove,
			CyclesDiversification: opts.TabuCyclesDiversification,
			CyclesIntensification: opts.TabuCyclesIntensification,
			MaxIter:               200,
			RNG:                   rng,
			Deadline:              roundDeadline,
		})
		return pickBetter(current, best)
	}
}

func pickBetter(a, b instance.Solution) instance.Solution {
	if b.Objective > a.Objective {
		return b
	}
	return a
}

// shortDeadline caps a single polish burst at 2s so a long global deadline
// still lets the coordination loop check in regularly.
func shortDeadline(global time.Time) (time.Time, bool) {
	burst := time.Now().Add(2 * time.Second)
	if global.IsZero() || burst.Before(global) {
		return burst, true
	}
	return global, true
}
