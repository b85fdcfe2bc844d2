// Package scorer computes the per-order efficiency metrics consumed by
// every heuristic in this module: cached unit counts, required-aisle
// supersets, standalone density, and the marginal-contribution function
// that both the greedy back-end and the branch-and-bound bound rely on.
//
// The optional priority-bonus weight mentioned as an "undocumented,
// empirical" knob in the original source (spec §9) is exposed here as a
// single documented parameter, off by default.
package scorer

import "github.com/fabiolinhares/wavepicker/waveindex"

// Options configures a Scorer. The zero value disables the optional
// priority bonus.
type Options struct {
	// PriorityBonusWeight, if non-zero, adds PriorityBonusWeight *
	// StandaloneDensity(order) to Contrib's value. Disabled (0) by
	// default; spec §9 only sanctions this as an explicit, documented
	// parameter, never a silent heuristic.
	PriorityBonusWeight float64
}

// Option mutates an Options during construction.
type Option func(*Options)

// WithPriorityBonusWeight enables the optional density bonus described in
// Options.PriorityBonusWeight.
func WithPriorityBonusWeight(weight float64) Option {
	return func(o *Options) { o.PriorityBonusWeight = weight }
}

// Scorer computes per-order metrics against one fixed Indices. Safe for
// concurrent use: it holds no mutable state.
type Scorer struct {
	idx  *waveindex.Indices
	opts Options
}

// New builds a Scorer over idx, applying any Options.
func New(idx *waveindex.Indices, opts ...Option) *Scorer {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scorer{idx: idx, opts: cfg}
}

// Units returns the cached total demanded units of order.
func (s *Scorer) Units(order int) int {
	return s.idx.Units(order)
}

// RequiredAisles returns the required-aisle superset of order (spec §4.1).
func (s *Scorer) RequiredAisles(order int) map[int]bool {
	return s.idx.RequiredAislesSuperset(order)
}

// StandaloneDensity returns units(order) / |required aisles|, or 0 if order
// has no required aisles (an order whose items are stocked in no aisle).
func (s *Scorer) StandaloneDensity(order int) float64 {
	req := s.RequiredAisles(order)
	if len(req) == 0 {
		return 0
	}
	return float64(s.Units(order)) / float64(len(req))
}

// Contrib returns the marginal contribution of adding order given the
// current aisle cover alreadyCovered: value = units(order) - lambda *
// |required\alreadyCovered|, plus the optional priority bonus (spec §4.3),
// and the count of newly required aisles.
func (s *Scorer) Contrib(order int, lambda float64, alreadyCovered map[int]bool) (value float64, newAisles int) {
	req := s.RequiredAisles(order)
	for a := range req {
		if !alreadyCovered[a] {
			newAisles++
		}
	}
	value = float64(s.Units(order)) - lambda*float64(newAisles)
	if s.opts.PriorityBonusWeight != 0 {
		value += s.opts.PriorityBonusWeight * s.StandaloneDensity(order)
	}
	return value, newAisles
}
