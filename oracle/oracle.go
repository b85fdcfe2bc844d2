package oracle

import (
	"sort"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

// Oracle answers feasibility questions against one fixed (Warehouse,
// Backlog, Indices) triple. It holds no mutable state of its own and is
// safe for concurrent use by multiple goroutines (read-only).
type Oracle struct {
	w   *instance.Warehouse
	b   *instance.Backlog
	idx *waveindex.Indices
}

// New builds an Oracle over w, b and their precomputed idx.
func New(w *instance.Warehouse, b *instance.Backlog, idx *waveindex.Indices) *Oracle {
	return &Oracle{w: w, b: b, idx: idx}
}

// WithinBounds reports LB <= totalUnits <= UB.
func (o *Oracle) WithinBounds(totalUnits int) bool {
	return totalUnits >= o.b.Wave.LB && totalUnits <= o.b.Wave.UB
}

// AggregateDemand sums demand per item across orderSet. StockFeasible and
// MinimalCover both build on this aggregation.
func (o *Oracle) AggregateDemand(orderSet []int) map[int]int {
	agg := make(map[int]int)
	for _, order := range orderSet {
		for item, qty := range o.b.Demand[order] {
			agg[item] += qty
		}
	}
	return agg
}

// StockFeasible reports whether aggregate demand of orderSet can be met by
// total warehouse stock of every referenced item, ignoring which aisles
// would be chosen. This is a necessary, cheap pre-check before the more
// expensive MinimalCover.
func (o *Oracle) StockFeasible(orderSet []int) bool {
	agg := o.AggregateDemand(orderSet)
	for item, need := range agg {
		if need > o.idx.TotalStock(item) {
			return false
		}
	}
	return true
}

// MinimalCover picks aisles to satisfy the aggregate demand of orderSet,
// using deterministic greedy max-coverage (spec §4.2): repeatedly choose
// the not-yet-selected aisle that newly fully covers the largest number of
// still-uncovered distinct items; ties broken by larger stock-sum over
// still-uncovered items; ties broken by smaller aisle id. Returns an empty,
// nil slice if orderSet is stock-infeasible.
func (o *Oracle) MinimalCover(orderSet []int) []int {
	demand := o.AggregateDemand(orderSet)
	if len(demand) == 0 {
		return nil
	}

	candidateSet := make(map[int]bool)
	for item := range demand {
		for _, as := range o.idx.AislesOf(item) {
			candidateSet[as.AisleID] = true
		}
	}
	candidates := make([]int, 0, len(candidateSet))
	for a := range candidateSet {
		candidates = append(candidates, a)
	}
	sort.Ints(candidates)

	cumulative := make(map[int]int, len(demand))
	remaining := make(map[int]bool, len(demand))
	for item := range demand {
		remaining[item] = true
	}

	selected := make([]int, 0, 4)
	taken := make(map[int]bool, len(candidates))

	for len(remaining) > 0 {
		bestAisle, bestNewlyCovered, bestStockSum := -1, -1, -1
		for _, a := range candidates {
			if taken[a] {
				continue
			}
			newlyCovered, stockSum := 0, 0
			for item := range remaining {
				stock := o.w.Stock[a][item]
				if stock <= 0 {
					continue
				}
				stockSum += stock
				if cumulative[item]+stock >= demand[item] {
					newlyCovered++
				}
			}
			if stockSum == 0 {
				continue
			}
			switch {
			case newlyCovered > bestNewlyCovered:
				bestAisle, bestNewlyCovered, bestStockSum = a, newlyCovered, stockSum
			case newlyCovered == bestNewlyCovered && stockSum > bestStockSum:
				bestAisle, bestNewlyCovered, bestStockSum = a, newlyCovered, stockSum
			case newlyCovered == bestNewlyCovered && stockSum == bestStockSum && (bestAisle == -1 || a < bestAisle):
				bestAisle, bestNewlyCovered, bestStockSum = a, newlyCovered, stockSum
			}
		}
		if bestAisle == -1 {
			// No remaining candidate contributes stock toward any
			// still-uncovered item: stock-infeasible.
			return nil
		}

		taken[bestAisle] = true
		selected = append(selected, bestAisle)
		for item := range remaining {
			stock := o.w.Stock[bestAisle][item]
			if stock <= 0 {
				continue
			}
			cumulative[item] += stock
			if cumulative[item] >= demand[item] {
				delete(remaining, item)
			}
		}
	}

	sort.Ints(selected)
	return selected
}
