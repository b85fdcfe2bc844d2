// Package instance defines the Warehouse, Backlog and Solution value types
// that every other wavepicker package consumes. Warehouse and Backlog are
// immutable once constructed: validation happens exactly once, at
// construction, so downstream packages never re-validate the raw data.
//
// Solution is a plain value object. It is never mutated in place across a
// publish point: a move produces a *new* canonical Solution from a modified
// order set, and only a canonical Solution may ever be handed to the
// ledger (see package ledger).
package instance

import (
	"fmt"
	"sort"
)

// Warehouse holds the per-aisle stock of a warehouse layout.
//
// Stock[a] maps item id to the non-negative quantity held in aisle a; an
// absent key means zero. NumItems and NumAisles bound the valid id ranges:
// every item id used anywhere in Stock must be in [0, NumItems), and every
// aisle id is its index in Stock, in [0, NumAisles).
type Warehouse struct {
	NumItems  int
	NumAisles int
	Stock     []map[int]int // len(Stock) == NumAisles
}

// NewWarehouse validates and constructs a Warehouse. Quantities must be
// strictly positive (a zero-quantity line is meaningless and rejected, same
// as a negative one); item ids must lie in [0, numItems).
func NewWarehouse(numItems, numAisles int, stock []map[int]int) (*Warehouse, error) {
	if numItems < 1 {
		return nil, fmt.Errorf("%w: num_items must be >= 1, got %d", ErrInvalidInstance, numItems)
	}
	if numAisles < 1 {
		return nil, fmt.Errorf("%w: num_aisles must be >= 1, got %d", ErrInvalidInstance, numAisles)
	}
	if len(stock) != numAisles {
		return nil, fmt.Errorf("%w: stock has %d aisles, want %d", ErrInvalidInstance, len(stock), numAisles)
	}
	for a, line := range stock {
		for item, qty := range line {
			if item < 0 || item >= numItems {
				return nil, fmt.Errorf("%w: aisle %d references item %d out of [0,%d)", ErrInvalidInstance, a, item, numItems)
			}
			if qty <= 0 {
				return nil, fmt.Errorf("%w: aisle %d item %d has non-positive quantity %d", ErrInvalidInstance, a, item, qty)
			}
		}
	}
	return &Warehouse{NumItems: numItems, NumAisles: numAisles, Stock: stock}, nil
}

// Wave bounds the total number of units a published Solution may contain.
type Wave struct {
	LB int
	UB int
}

// Backlog holds the order demand lines and the wave bound for one instance.
type Backlog struct {
	NumOrders int
	Demand    []map[int]int // len(Demand) == NumOrders
	Wave      Wave
}

// NewBacklog validates and constructs a Backlog. Every demand quantity must
// be strictly positive; item ids must lie in [0, numItems); LB must not
// exceed UB.
func NewBacklog(numOrders, numItems int, demand []map[int]int, wave Wave) (*Backlog, error) {
	if numOrders < 1 {
		return nil, fmt.Errorf("%w: num_orders must be >= 1, got %d", ErrInvalidInstance, numOrders)
	}
	if len(demand) != numOrders {
		return nil, fmt.Errorf("%w: demand has %d orders, want %d", ErrInvalidInstance, len(demand), numOrders)
	}
	if wave.LB < 0 || wave.LB > wave.UB {
		return nil, fmt.Errorf("%w: wave bounds invalid LB=%d UB=%d", ErrInvalidInstance, wave.LB, wave.UB)
	}
	for o, line := range demand {
		if len(line) == 0 {
			return nil, fmt.Errorf("%w: order %d has no demand lines", ErrInvalidInstance, o)
		}
		for item, qty := range line {
			if item < 0 || item >= numItems {
				return nil, fmt.Errorf("%w: order %d references item %d out of [0,%d)", ErrInvalidInstance, o, item, numItems)
			}
			if qty <= 0 {
				return nil, fmt.Errorf("%w: order %d item %d has non-positive quantity %d", ErrInvalidInstance, o, item, qty)
			}
		}
	}
	return &Backlog{NumOrders: numOrders, Demand: demand, Wave: wave}, nil
}

// Solution is the canonical answer: a sorted, duplicate-free order set, a
// sorted, duplicate-free aisle set, the resulting total units and the
// F/G objective. See Validate for the full invariant set (spec §3).
type Solution struct {
	OrderSet   []int
	AisleSet   []int
	TotalUnits int
	Objective  float64
}

// NewSolution canonicalizes orderSet/aisleSet (sort ascending, drop
// duplicates) and computes Objective = TotalUnits / len(AisleSet). An empty
// aisle set yields Objective 0 (the infeasible marker shape).
func NewSolution(orderSet, aisleSet []int, totalUnits int) Solution {
	os := canonicalize(orderSet)
	as := canonicalize(aisleSet)
	obj := 0.0
	if len(as) > 0 {
		obj = float64(totalUnits) / float64(len(as))
	}
	return Solution{OrderSet: os, AisleSet: as, TotalUnits: totalUnits, Objective: obj}
}

// Infeasible returns the explicit infeasible marker: empty order/aisle
// sets, zero units, zero objective (spec §7).
func Infeasible() Solution {
	return Solution{OrderSet: nil, AisleSet: nil, TotalUnits: 0, Objective: 0}
}

// IsInfeasible reports whether s is the explicit infeasible marker.
func (s Solution) IsInfeasible() bool {
	return len(s.OrderSet) == 0 && len(s.AisleSet) == 0
}

// Validate checks invariants 1-6 of spec §3 against the owning instance's
// Warehouse/Backlog. A non-nil error here means a post-condition failure:
// callers should treat it as ErrInternalInvariantViolation and must never
// publish the offending Solution.
func (s Solution) Validate(w *Warehouse, b *Backlog) error {
	if s.IsInfeasible() {
		return nil
	}
	seenO := make(map[int]bool, len(s.OrderSet))
	for i, o := range s.OrderSet {
		if o < 0 || o >= b.NumOrders {
			return fmt.Errorf("%w: order id %d out of range", ErrInternalInvariantViolation, o)
		}
		if seenO[o] {
			return fmt.Errorf("%w: duplicate order id %d", ErrInternalInvariantViolation, o)
		}
		seenO[o] = true
		if i > 0 && s.OrderSet[i-1] >= o {
			return fmt.Errorf("%w: order set not sorted ascending", ErrInternalInvariantViolation)
		}
	}
	seenA := make(map[int]bool, len(s.AisleSet))
	for i, a := range s.AisleSet {
		if a < 0 || a >= w.NumAisles {
			return fmt.Errorf("%w: aisle id %d out of range", ErrInternalInvariantViolation, a)
		}
		if seenA[a] {
			return fmt.Errorf("%w: duplicate aisle id %d", ErrInternalInvariantViolation, a)
		}
		seenA[a] = true
		if i > 0 && s.AisleSet[i-1] >= a {
			return fmt.Errorf("%w: aisle set not sorted ascending", ErrInternalInvariantViolation)
		}
	}
	if s.TotalUnits < b.Wave.LB || s.TotalUnits > b.Wave.UB {
		return fmt.Errorf("%w: total units %d outside [%d,%d]", ErrInternalInvariantViolation, s.TotalUnits, b.Wave.LB, b.Wave.UB)
	}
	if len(s.AisleSet) == 0 {
		return fmt.Errorf("%w: non-empty order set with empty aisle set", ErrInternalInvariantViolation)
	}
	demand := make(map[int]int)
	for _, o := range s.OrderSet {
		for item, qty := range b.Demand[o] {
			demand[item] += qty
		}
	}
	supply := make(map[int]int)
	for _, a := range s.AisleSet {
		for item, qty := range w.Stock[a] {
			supply[item] += qty
		}
	}
	for item, need := range demand {
		if supply[item] < need {
			return fmt.Errorf("%w: item %d demand %d exceeds cover supply %d", ErrInternalInvariantViolation, item, need, supply[item])
		}
	}
	wantObj := float64(s.TotalUnits) / float64(len(s.AisleSet))
	if absDiff(wantObj, s.Objective) > 1e-9 {
		return fmt.Errorf("%w: objective %f does not match units/aisles %f", ErrInternalInvariantViolation, s.Objective, wantObj)
	}
	return nil
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func canonicalize(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	tmp := make([]int, len(in))
	copy(tmp, in)
	sort.Ints(tmp)
	out := tmp[:1]
	for _, v := range tmp[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
