// Package innersolver implements the linearised inner subproblem of spec
// §4.4: given a Dinkelbach multiplier λ, maximise F(x) - λ·G(x) over order
// selections x, with the aisle set y implied as the minimal cover of x.
//
// Two back-ends share the same Params and the same Scorer/Oracle: Greedy
// (§4.4.1, a single constructive pass with an LB-repair phase) and
// BranchAndBound (§4.4.2, best-first search over a container/heap priority
// queue with problem-specific bounds, coverage and dominance cuts, and
// three pluggable variable-selection strategies).
//
// Nodes are plain value types copied onto/off the heap (spec §9: "keep
// by-value; nodes are small and cheap to copy"), matching lvlath's
// by-value priority-queue entries in package dijkstra.
package innersolver
