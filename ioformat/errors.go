// SPDX-License-Identifier: MIT
// Package ioformat: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers MUST branch
// on these via errors.Is; messages are never stringified with caller-supplied
// parameters at the definition site — context is attached with fmt.Errorf's
// %w at the call boundary instead.

package ioformat

import "errors"

// ErrMalformedLine marks a line that does not scan into the expected
// number of whitespace-separated integers (spec.md §6's "whitespace-
// separated tokens, line-significant" format).
var ErrMalformedLine = errors.New("ioformat: malformed line")

// ErrTruncated marks a file that ends before every declared section has
// been read (e.g. fewer order lines than N_O promised).
var ErrTruncated = errors.New("ioformat: file ends before all declared sections are read")
