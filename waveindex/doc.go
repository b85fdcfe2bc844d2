// Package waveindex builds the derived, read-only lookup tables described in
// spec §4.1: item→aisles, item→total-stock, order→units and
// order→required-aisle superset.
//
// Indices are built once, in a single linear pass over the Warehouse and a
// single linear pass over the Backlog, and are never mutated afterwards.
// This replaces the original source's pattern of caching maps inside the
// mutable Backlog struct (spec §9): every consumer here holds an immutable
// *Indices by reference and never re-scans the raw Warehouse/Backlog maps in
// a hot loop.
package waveindex
