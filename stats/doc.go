// Package stats exposes the search package's per-query counters
// (relaxations, pops, pushes) as prometheus metrics, plus an optional
// runtime memory collector (spec §5's per-thread memory statistics
// dumps, gated by CHARGE_TAIL_MEMORY).
//
// Per spec §5, the registry is process-wide shared mutable state updated
// lock-free per event: each worker accumulates its own search.Stats
// locally for the duration of one query and folds the totals into the
// registry's counters once at query end, rather than incrementing a
// shared counter on every single relaxation.
package stats
