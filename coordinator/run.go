package coordinator

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/fabiolinhares/wavepicker/dinkelbach"
	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/ledger"
)

// Result is everything Run reports about one coordinated search.
type Result struct {
	Best  instance.Solution
	Elite []instance.Solution
	// Dinkelbach and Stats are the convergence trace and B&B search
	// statistics of whichever worker found Best, surfaced for
	// report.FullTable's rendering. Zero value if every worker errored.
	Dinkelbach dinkelbach.Result
	Stats      innersolver.Stats
}

// Run implements spec §4.7: it launches opts.Workers goroutines, each
// running its own Dinkelbach+local-search chain against bundle, all
// publishing through one shared ledger.Ledger, and returns the ledger's
// best-known incumbent once every worker has stopped (deadline reached,
// Ctx cancelled, or MaxRounds exhausted).
//
// log, if nil, discards every message (callers that don't care about
// progress pass nil rather than wiring log/slog themselves).
func Run(bundle Bundle, opts Options, log *slog.Logger) Result {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := ledger.New(opts.Ledger)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	// golang.org/x/time/rate throttles progress logging only; it never
	// gates the solve hot path (SPEC_FULL.md §5).
	logLimiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)

	var wg sync.WaitGroup
	results := make([]workerResult, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results[id] = runWorker(id, bundle, opts, l, log, logLimiter)
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, r := range results {
		if r.err != nil {
			continue
		}
		l.Offer(r.best)
		if winner == -1 || r.best.Objective > results[winner].best.Objective {
			winner = i
		}
	}

	res := Result{Best: l.Best(), Elite: l.Elite()}
	if winner != -1 {
		res.Dinkelbach = results[winner].dink
		res.Stats = results[winner].dink.BestStats
	}
	return res
}
