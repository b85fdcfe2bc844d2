// Package localsearch implements the neighbourhood-move local-search engine
// of spec §4.6: a shared move representation and evaluator, plus three
// metaheuristics built on top of it — Tabu Search, VNS and ILS. All three
// operate on a single instance.Solution and only ever replace it with a new
// canonical Solution; none mutate a Solution in place.
package localsearch
