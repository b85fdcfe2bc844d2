// Package wavepicker (module github.com/fabiolinhares/wavepicker) solves the
// warehouse wave-picking fractional-optimization problem: given a backlog of
// orders and a warehouse layout, select a subset of orders (a "wave") and a
// minimal set of aisles to visit, maximizing picked-units / aisles-visited
// subject to a unit-bound window and per-item stock feasibility.
//
// Packages, leaves first:
//
//	instance/     — Warehouse, Backlog, Solution value types and sentinel errors
//	waveindex/    — derived, read-only lookup tables over an instance
//	oracle/       — feasibility checks and minimal aisle cover
//	scorer/       — per-order efficiency metrics shared by every heuristic
//	innersolver/  — greedy and branch-and-bound back-ends for the linearised subproblem
//	dinkelbach/   — the outer fractional-programming driver
//	localsearch/  — Tabu Search / VNS / ILS neighbourhood refinement
//	ledger/       — the best-known incumbent and a bounded elite pool
//	coordinator/  — parallel restart workers sharing one ledger
//	ioformat/     — instance-file parsing and solution-file writing
//	report/       — terminal summaries of a solved instance
//	config/       — YAML run configuration
//	cmd/wavepicker — the command-line harness
//
// Data flow: an instance is parsed, its indices and order scores are
// precomputed once, then the coordinator runs one Dinkelbach+local-search
// chain per worker, each chain repeatedly invoking the inner solver and
// polishing its incumbent, publishing improvements to the shared ledger.
package wavepicker
