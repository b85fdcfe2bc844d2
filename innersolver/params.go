package innersolver

import (
	"fmt"
	"time"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/scorer"
)

// Backend selects which inner-subproblem back-end Solve dispatches to.
type Backend int

const (
	// BackendGreedy runs the single-pass constructive heuristic (§4.4.1).
	BackendGreedy Backend = iota
	// BackendBranchAndBound runs the best-first branch-and-bound search (§4.4.2).
	BackendBranchAndBound
)

// VarSelectStrategy selects how BranchAndBound picks the next order to
// branch on (spec §4.4.2).
type VarSelectStrategy int

const (
	// MaxImpact branches on the free order with the largest Contrib value.
	MaxImpact VarSelectStrategy = iota
	// MostInfeasible branches on the free order whose Contrib value,
	// min-max normalised across the current free set, is closest to 0.5.
	MostInfeasible
	// PseudoCost branches on the free order maximising the product of its
	// learned "fix in" and "fix out" pseudo-costs.
	PseudoCost
)

// Params bundles everything one inner-solver invocation needs. Oracle and
// Scorer are read-only and safe to share across concurrent invocations;
// Deadline is the wall-clock budget T_inner (zero value = no deadline).
type Params struct {
	Oracle    *oracle.Oracle
	Scorer    *scorer.Scorer
	NumOrders int
	NumAisles int
	LB        int
	UB        int
	Lambda    float64
	Deadline  time.Time
	VarSelect VarSelectStrategy
}

func (p Params) deadlineExceeded() bool {
	return !p.Deadline.IsZero() && time.Now().After(p.Deadline)
}

// Stats reports branch-and-bound search statistics (spec §4.4.2). Greedy
// leaves every counter at zero.
type Stats struct {
	NodesExplored         int
	PrunedByBound         int
	PrunedByInfeasibility int
	PrunedByCoverageCut   int
	PrunedByDominanceCut  int
	Elapsed               time.Duration
	TimedOut              bool
}

// Solve dispatches to the requested back-end and returns its best feasible
// Solution together with search statistics (always zero for Greedy). This
// is the "variant type over concrete back-ends" free function called for
// by spec §9, replacing the original's inheritance-based solver hierarchy.
func Solve(backend Backend, p Params) (instance.Solution, Stats, error) {
	switch backend {
	case BackendGreedy:
		sol, err := Greedy(p)
		return sol, Stats{}, err
	case BackendBranchAndBound:
		return BranchAndBound(p)
	default:
		return instance.Infeasible(), Stats{}, fmt.Errorf("innersolver: unknown backend %d", backend)
	}
}
