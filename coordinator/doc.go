// Package coordinator runs the parallel restart search of spec §4.7: a
// worker pool, each worker owning its own RNG, Dinkelbach driver and
// local-search engine, all reading one immutable instance bundle and
// writing through one shared, mutex-guarded package ledger.Ledger.
package coordinator
