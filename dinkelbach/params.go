package dinkelbach

import (
	"math/rand"
	"time"

	"github.com/fabiolinhares/wavepicker/innersolver"
)

// DefaultEpsilon is the default convergence tolerance on successive lambda
// estimates (spec §4.5).
const DefaultEpsilon = 2e-3

// DefaultMaxIter bounds the outer loop; in practice the loop almost always
// stops earlier via Epsilon or the wall-clock Deadline.
const DefaultMaxIter = 200_000

// cycleWindow is the length of the lambda history window cycle detection
// looks at (spec §4.5: "length w = 4").
const cycleWindow = 4

// jitterFrac bounds the uniform cycle-escape jitter (spec §4.5: "[-0.05, 0.05]").
const jitterFrac = 0.05

// Options configures one Run of the outer loop.
type Options struct {
	// Epsilon is the convergence tolerance. Zero means DefaultEpsilon.
	Epsilon float64
	// MaxIter bounds the loop regardless of convergence. Zero means
	// DefaultMaxIter.
	MaxIter int
	// Backend and VarSelect select the inner-solver call made every
	// iteration.
	Backend   innersolver.Backend
	VarSelect innersolver.VarSelectStrategy
	// Deadline, if non-zero, bounds the whole Run; it is also forwarded to
	// each inner-solver call so a single slow iteration cannot blow the
	// outer budget.
	Deadline time.Time
	// RNG drives the cycle-escape jitter. A nil RNG disables jitter
	// (escape falls back to a fixed +jitterFrac, i.e. +5%, nudge), which
	// keeps Run reproducible for callers that pass no RNG.
	RNG *rand.Rand
	// EliteSink, if non-nil, receives every distinct feasible Solution the
	// loop encounters (spec §4.5 step 5). See the EliteSink interface.
	EliteSink EliteSink
}

func (o Options) epsilon() float64 {
	if o.Epsilon > 0 {
		return o.Epsilon
	}
	return DefaultEpsilon
}

func (o Options) maxIter() int {
	if o.MaxIter > 0 {
		return o.MaxIter
	}
	return DefaultMaxIter
}

func (o Options) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}
