// Package ledger holds the two objects package coordinator's workers share:
// the running best Solution and a bounded, diversity-admitted elite pool
// (spec §4.7, §5). A single mutex guards both; critical sections are the
// size of a Solution copy, matching the teacher's core.Graph split-lock
// discipline generalised down to one lock since here there is only one
// shared object to protect.
package ledger
