// Package oracle answers the two feasibility questions every heuristic in
// this module needs: is a set of total units inside [LB,UB], and is a set
// of orders satisfiable from warehouse stock — plus the one constructive
// question, what is the minimal aisle cover for a chosen order set.
//
// Tie-breaks in MinimalCover are fully deterministic (spec §4.2): the same
// order set always yields the same cover, regardless of Go's randomized map
// iteration order, because every candidate is scored before any decision is
// made.
package oracle
