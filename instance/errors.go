// SPDX-License-Identifier: MIT
// Package instance: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers MUST branch
// on these via errors.Is; messages are never stringified with caller-supplied
// parameters at the definition site — context is attached with fmt.Errorf's
// %w at the call boundary instead.

package instance

import "errors"

var (
	// ErrInvalidInstance marks a malformed instance: an out-of-range id, a
	// non-positive quantity, or LB > UB.
	ErrInvalidInstance = errors.New("instance: invalid instance")

	// ErrInfeasible marks that no order set meets LB under stock constraints.
	// It is not fatal: the caller still receives a well-formed, empty
	// Solution and the writer still emits a file.
	ErrInfeasible = errors.New("instance: no feasible wave")

	// ErrTimeout marks that a deadline elapsed before a definitive answer was
	// reached. The caller receives the best feasible Solution seen so far.
	ErrTimeout = errors.New("instance: deadline exceeded")

	// ErrInternalInvariantViolation marks a post-condition failure on a
	// Solution, as reported by Solution.Validate. Validate is not called on
	// the publish path: ledger.Ledger.Offer accepts a Solution without
	// validating it.
	ErrInternalInvariantViolation = errors.New("instance: invariant violation on publish")
)
