package ledger

import (
	"sort"
	"sync"

	"github.com/fabiolinhares/wavepicker/instance"
)

// DefaultKElite bounds the elite pool (spec §5: "bounded by K_ELITE entries").
const DefaultKElite = 500

// DefaultMinDiversity is the minimum Jaccard distance a candidate must keep
// from every already-admitted elite to be let in (spec §9 resolves the
// undocumented "Jaccard-diversity admission" knob at 0.3).
const DefaultMinDiversity = 0.3

// Options configures a Ledger. Zero values fall back to the defaults above.
type Options struct {
	KElite       int
	MinDiversity float64
}

func (o Options) kElite() int {
	if o.KElite > 0 {
		return o.KElite
	}
	return DefaultKElite
}

func (o Options) minDiversity() float64 {
	if o.MinDiversity > 0 {
		return o.MinDiversity
	}
	return DefaultMinDiversity
}

// Ledger is the single shared, mutex-guarded object every coordinator
// worker reads and writes (spec §5). The zero value is not usable; build
// one with New.
type Ledger struct {
	mu    sync.Mutex
	opts  Options
	best  instance.Solution
	elite []instance.Solution // kept sorted: objective desc, OrderSet lexicographic asc
}

// New builds an empty Ledger (Best starts as the infeasible marker).
func New(opts Options) *Ledger {
	return &Ledger{opts: opts, best: instance.Infeasible()}
}

// Offer publishes sol: it updates Best if sol strictly improves on the
// current best (spec §8's "monotone best: never decreases"), and admits
// sol into the elite pool if it is sufficiently diverse from every member
// already there or its objective strictly exceeds the pool's worst entry
// (see admitElite). Offer silently ignores the infeasible marker.
func (l *Ledger) Offer(sol instance.Solution) {
	if sol.IsInfeasible() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.best.IsInfeasible() || sol.Objective > l.best.Objective {
		l.best = sol
	}
	l.admitElite(sol)
}

// Best returns a snapshot of the current best Solution.
func (l *Ledger) Best() instance.Solution {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.best
}

// Elite returns a snapshot copy of the current elite pool, ordered by
// descending objective.
func (l *Ledger) Elite() []instance.Solution {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]instance.Solution, len(l.elite))
	copy(out, l.elite)
	return out
}

// admitElite inserts sol into l.elite under spec §3's OR-admission rule:
// sol is let in if it is diverse enough from every existing member, OR its
// objective strictly exceeds the pool's current worst entry (in which case
// it displaces that entry on the trim below) — then trims to KElite,
// evicting the weakest (lowest objective, lexicographically-largest
// OrderSet on ties) if over capacity. Must be called with l.mu held.
func (l *Ledger) admitElite(sol instance.Solution) {
	minDiv := l.opts.minDiversity()
	diverse := true
	for _, e := range l.elite {
		if jaccardDistance(sol.OrderSet, e.OrderSet) < minDiv {
			diverse = false
			break
		}
	}
	if !diverse {
		beatsWorst := len(l.elite) == 0 || sol.Objective > l.elite[len(l.elite)-1].Objective
		if !beatsWorst {
			return
		}
	}

	l.elite = append(l.elite, sol)
	sort.Slice(l.elite, func(i, j int) bool {
		a, b := l.elite[i], l.elite[j]
		if a.Objective != b.Objective {
			return a.Objective > b.Objective
		}
		return lexLess(a.OrderSet, b.OrderSet)
	})
	if k := l.opts.kElite(); len(l.elite) > k {
		l.elite = l.elite[:k]
	}
}

// jaccardDistance is 1 - |a ∩ b| / |a ∪ b|, with the empty/empty case
// defined as 0 (identical, hence maximally non-diverse).
func jaccardDistance(a, b []int) float64 {
	setA := make(map[int]bool, len(a))
	for _, x := range a {
		setA[x] = true
	}
	setB := make(map[int]bool, len(b))
	for _, x := range b {
		setB[x] = true
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	inter := 0
	for x := range setA {
		if setB[x] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}

// lexLess breaks elite-pool ties deterministically by comparing canonical
// (already-sorted) order sets element-by-element.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
