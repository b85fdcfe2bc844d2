package waveindex

import (
	"sort"

	"github.com/fabiolinhares/wavepicker/instance"
)

// AisleStock pairs an aisle id with the stock of one item held there.
type AisleStock struct {
	AisleID int
	Stock   int
}

// Indices holds every lookup table derived from one (Warehouse, Backlog)
// pair. All fields are read-only after Build returns.
type Indices struct {
	aislesOfItem   []([]AisleStock) // len == NumItems; sorted by AisleID ascending
	totalStockItem []int            // len == NumItems
	unitsOfOrder   []int            // len == NumOrders
	requiredAisles []map[int]bool   // len == NumOrders; superset of aisles that stock any demanded item
}

// Build constructs Indices from w and b in O(NumAisles*avg_line +
// NumOrders*avg_line) time, one pass over each raw map.
func Build(w *instance.Warehouse, b *instance.Backlog) *Indices {
	idx := &Indices{
		aislesOfItem:   make([][]AisleStock, w.NumItems),
		totalStockItem: make([]int, w.NumItems),
		unitsOfOrder:   make([]int, b.NumOrders),
		requiredAisles: make([]map[int]bool, b.NumOrders),
	}

	for aisleID, line := range w.Stock {
		for item, qty := range line {
			idx.aislesOfItem[item] = append(idx.aislesOfItem[item], AisleStock{AisleID: aisleID, Stock: qty})
			idx.totalStockItem[item] += qty
		}
	}
	for item := range idx.aislesOfItem {
		sort.Slice(idx.aislesOfItem[item], func(i, j int) bool {
			return idx.aislesOfItem[item][i].AisleID < idx.aislesOfItem[item][j].AisleID
		})
	}

	for o, line := range b.Demand {
		req := make(map[int]bool)
		units := 0
		for item, qty := range line {
			units += qty
			for _, as := range idx.aislesOfItem[item] {
				req[as.AisleID] = true
			}
		}
		idx.unitsOfOrder[o] = units
		idx.requiredAisles[o] = req
	}

	return idx
}

// AislesOf returns the (aisle_id, stock_here) pairs for item, sorted by
// aisle id ascending, empty iff item appears in no aisle.
func (idx *Indices) AislesOf(item int) []AisleStock {
	return idx.aislesOfItem[item]
}

// TotalStock returns the sum of stock of item across all aisles.
func (idx *Indices) TotalStock(item int) int {
	return idx.totalStockItem[item]
}

// Units returns the cached total demanded units of order.
func (idx *Indices) Units(order int) int {
	return idx.unitsOfOrder[order]
}

// RequiredAislesSuperset returns the union, over every item order demands,
// of the set of aisles stocking that item. This is a superset of what any
// actual cover needs — the real requirement is the union over a *bundle* of
// orders, computed on demand by package oracle.
func (idx *Indices) RequiredAislesSuperset(order int) map[int]bool {
	return idx.requiredAisles[order]
}

// NumItems and NumOrders expose the bounds used to build idx, so consumers
// can range without holding onto the originating Warehouse/Backlog.
func (idx *Indices) NumItems() int  { return len(idx.aislesOfItem) }
func (idx *Indices) NumOrders() int { return len(idx.unitsOfOrder) }
