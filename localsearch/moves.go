package localsearch

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fabiolinhares/wavepicker/instance"
	"github.com/fabiolinhares/wavepicker/oracle"
	"github.com/fabiolinhares/wavepicker/waveindex"
)

// MoveKind enumerates the neighbourhood moves of spec §4.6 ("TypeOfMove").
type MoveKind int8

const (
	MoveAdd MoveKind = iota
	MoveRemove
	MoveSwap
	MoveChain2For1
	MoveChain2For2
	MoveCorridorReduction
)

func (k MoveKind) String() string {
	switch k {
	case MoveAdd:
		return "add"
	case MoveRemove:
		return "remove"
	case MoveSwap:
		return "swap"
	case MoveChain2For1:
		return "chain2for1"
	case MoveChain2For2:
		return "chain2for2"
	case MoveCorridorReduction:
		return "corridor_reduction"
	default:
		return "unknown"
	}
}

// Move is a candidate transition: drop the orders in Remove, add the
// orders in Add.
type Move struct {
	Kind   MoveKind
	Add    []int
	Remove []int
}

// Key renders the tabu key of spec §4.6.1: "(kind, sorted orders added,
// sorted orders removed)".
func (m Move) Key() string {
	add := append([]int{}, m.Add...)
	rem := append([]int{}, m.Remove...)
	sort.Ints(add)
	sort.Ints(rem)
	return fmt.Sprintf("%s|%s|%s", m.Kind, intsJoin(add), intsJoin(rem))
}

func intsJoin(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ",")
}

// Engine evaluates moves and generates neighbourhoods against one fixed
// (Indices, Oracle) pair. Safe for concurrent use: it holds no mutable
// state of its own.
type Engine struct {
	idx       *waveindex.Indices
	oracle    *oracle.Oracle
	numOrders int
}

// NewEngine builds an Engine. numOrders bounds the universe Add/Swap/Chain
// moves may draw from.
func NewEngine(idx *waveindex.Indices, o *oracle.Oracle, numOrders int) *Engine {
	return &Engine{idx: idx, oracle: o, numOrders: numOrders}
}

// applyMove returns the candidate order set of current with mv's removes
// dropped and adds appended, deduplicated.
func applyMove(current []int, mv Move) []int {
	in := make(map[int]bool, len(current))
	for _, o := range current {
		in[o] = true
	}
	for _, o := range mv.Remove {
		delete(in, o)
	}
	for _, o := range mv.Add {
		in[o] = true
	}
	out := make([]int, 0, len(in))
	for o := range in {
		out = append(out, o)
	}
	return out
}

// buildSolution constructs a canonical Solution from orderSet, validating
// [LB,UB] and stock feasibility and recomputing the minimal cover. ok is
// false iff orderSet is not a valid Solution under those constraints.
func (e *Engine) buildSolution(orderSet []int, lb, ub int) (instance.Solution, bool) {
	if len(orderSet) == 0 {
		return instance.Infeasible(), false
	}
	total := 0
	for _, o := range orderSet {
		total += e.idx.Units(o)
	}
	if total < lb || total > ub {
		return instance.Infeasible(), false
	}
	if !e.oracle.StockFeasible(orderSet) {
		return instance.Infeasible(), false
	}
	aisleSet := e.oracle.MinimalCover(orderSet)
	if aisleSet == nil {
		return instance.Infeasible(), false
	}
	return instance.NewSolution(orderSet, aisleSet, total), true
}

// Evaluate applies mv to current and scores it (spec §4.6 "Move
// evaluation"): delta = new_objective - old_objective, or -Inf if the
// candidate violates [LB,UB] or stock feasibility.
func (e *Engine) Evaluate(current instance.Solution, mv Move, lb, ub int) (instance.Solution, float64) {
	candidateOrders := applyMove(current.OrderSet, mv)
	sol, ok := e.buildSolution(candidateOrders, lb, ub)
	if !ok {
		return instance.Infeasible(), math.Inf(-1)
	}
	return sol, sol.Objective - current.Objective
}

// AddMoves enumerates one Add(o) move per order not currently in current.
func (e *Engine) AddMoves(current instance.Solution) []Move {
	in := toSet(current.OrderSet)
	moves := make([]Move, 0, e.numOrders-len(in))
	for o := 0; o < e.numOrders; o++ {
		if !in[o] {
			moves = append(moves, Move{Kind: MoveAdd, Add: []int{o}})
		}
	}
	return moves
}

// RemoveMoves enumerates one Remove(o) move per order currently in current.
func (e *Engine) RemoveMoves(current instance.Solution) []Move {
	moves := make([]Move, 0, len(current.OrderSet))
	for _, o := range current.OrderSet {
		moves = append(moves, Move{Kind: MoveRemove, Remove: []int{o}})
	}
	return moves
}

// SwapMoves enumerates one Swap(out, in) move per (order in current) x
// (order not in current) pair.
func (e *Engine) SwapMoves(current instance.Solution) []Move {
	in := toSet(current.OrderSet)
	moves := make([]Move, 0, len(current.OrderSet)*(e.numOrders-len(in)))
	for _, out := range current.OrderSet {
		for o := 0; o < e.numOrders; o++ {
			if !in[o] {
				moves = append(moves, Move{Kind: MoveSwap, Remove: []int{out}, Add: []int{o}})
			}
		}
	}
	return moves
}

// CorridorReductionMove implements spec §4.6's corridor-reduction move:
// find the aisle used by the fewest orders in current, and if the orders
// requiring it form a single removable group, return the multi-remove that
// drops them. ok is false if current uses no aisle (empty solution) or the
// minimal-usage aisle's order group is the entire solution (nothing left to
// keep).
func (e *Engine) CorridorReductionMove(current instance.Solution) (Move, bool) {
	if len(current.AisleSet) == 0 {
		return Move{}, false
	}
	aisleOrders := make(map[int][]int, len(current.AisleSet))
	for _, o := range current.OrderSet {
		for a := range e.idx.RequiredAislesSuperset(o) {
			if containsInt(current.AisleSet, a) {
				aisleOrders[a] = append(aisleOrders[a], o)
			}
		}
	}
	bestAisle, bestCount := -1, math.MaxInt32
	for _, a := range current.AisleSet {
		n := len(aisleOrders[a])
		if n > 0 && n < bestCount {
			bestAisle, bestCount = a, n
		}
	}
	if bestAisle == -1 {
		return Move{}, false
	}
	removed := aisleOrders[bestAisle]
	if len(removed) >= len(current.OrderSet) {
		return Move{}, false
	}
	rm := make([]int, len(removed))
	copy(rm, removed)
	sort.Ints(rm)
	return Move{Kind: MoveCorridorReduction, Remove: rm}, true
}

func toSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
