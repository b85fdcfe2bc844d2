package coordinator

import (
	"context"
	"time"

	"github.com/fabiolinhares/wavepicker/innersolver"
	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/ledger"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/scorer"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

// DefaultCommInterval is how many local-search rounds elapse between a
// worker's diversification-exchange checks (spec §4.7: "COMM_INTERVAL,
// default 100").
const DefaultCommInterval = 100

// DefaultAdoptProbability is the chance a worker adopts the Ledger's best
// as its new current solution at a diversification-exchange point (spec
// §4.7: "with probability 0.25").
const DefaultAdoptProbability = 0.25

// LocalSearchKind selects which of package localsearch's three
// metaheuristics a worker polishes Dinkelbach's incumbent with.
type LocalSearchKind int8

const (
	LSTabu LocalSearchKind = iota
	LSVNS
	LSILS
)

// Bundle is the single read-only object every worker receives (spec §4.7
// step 1: "the read-only instance and indices").
type Bundle struct {
	Warehouse *instance.Warehouse
	Backlog   *instance.Backlog
	Indices   *waveindex.Indices
	Oracle    *oracle.Oracle
	Scorer    *scorer.Scorer
}

// Options configures one Coordinator Run.
type Options struct {
	// Workers is the number of worker goroutines to launch, already
	// resolved by the caller (spec §4.7: "up to hardware_parallelism(),
	// bounded >=2, <=user_request" — cmd/wavepicker computes that bound).
	Workers int
	// MasterSeed seeds every worker's RNG deterministically (spec §9: "no
	// random_device; pass a master seed, derive per-worker seeds").
	MasterSeed int64
	// Backend and VarSelect configure every worker's inner-solver calls.
	Backend   innersolver.Backend
	VarSelect innersolver.VarSelectStrategy
	// LocalSearch selects the metaheuristic each worker runs. Workers are
	// assigned kinds round-robin over this slice (a diversified fleet, not
	// a single choice), falling back to []LocalSearchKind{LSTabu} if empty.
	LocalSearch []LocalSearchKind
	// CommInterval and AdoptProbability govern the diversification
	// exchange. Zero means the package defaults above.
	CommInterval     int
	AdoptProbability float64
	// MaxRounds bounds each worker's Dinkelbach+LocalSearch round count
	// regardless of Deadline (a round is one Dinkelbach Run plus one
	// local-search pass). Zero means 1_000.
	MaxRounds int
	// Deadline bounds the whole coordinated search; forwarded to every
	// Dinkelbach and local-search call so no worker runs past it.
	Deadline time.Time
	// Ctx, if non-nil, is polled at round boundaries alongside Deadline
	// (spec §5: "a shared stop flag... raised when... the user aborts").
	Ctx context.Context
	// Ledger configures the shared ledger.Ledger's elite-pool sizing and
	// diversity threshold (spec §3). Zero value uses ledger's own
	// defaults.
	Ledger ledger.Options
	// InnerSolverTimeBudget bounds each round's Dinkelbach+inner-solver
	// call (spec §4.4's T_inner), independent of the overall Deadline.
	// Zero means "bounded by Deadline only".
	InnerSolverTimeBudget time.Duration
	// Tabu*, VNSKMax and ILSPerturbationBase tune the local-search
	// metaheuristic a worker's polish() step runs (spec §4.6). Zero
	// values fall back to package localsearch's own documented defaults.
	TabuBaseTenure            int
	TabuMaxNoImprove          int
	TabuCyclesDiversification int
	TabuCyclesIntensification int
	VNSKMax                   int
	ILSPerturbationBase       float64
}

func (o Options) commInterval() int {
	if o.CommInterval > 0 {
		return o.CommInterval
	}
	return DefaultCommInterval
}

func (o Options) adoptProbability() float64 {
	if o.AdoptProbability > 0 {
		return o.AdoptProbability
	}
	return DefaultAdoptProbability
}

func (o Options) maxRounds() int {
	if o.MaxRounds > 0 {
		return o.MaxRounds
	}
	return 1_000
}

func (o Options) localSearchKinds() []LocalSearchKind {
	if len(o.LocalSearch) > 0 {
		return o.LocalSearch
	}
	return []LocalSearchKind{LSTabu}
}

func (o Options) deadlineExceeded() bool {
	if !o.Deadline.IsZero() && time.Now().After(o.Deadline) {
		return true
	}
	if o.Ctx != nil && o.Ctx.Err() != nil {
		return true
	}
	return false
}
