// Package dinkelbach drives the outer parametric loop of spec §4.5: it
// repeatedly calls package innersolver with an updated lambda, checks for
// convergence of the F/G ratio, and detects the two pathologies the spec
// calls out by name — oscillation (damp) and cycling (jitter-escape) — so
// that a pathological instance still terminates instead of looping forever.
package dinkelbach
