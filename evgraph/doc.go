// Package evgraph defines the fixed-point scale and the forward-star
// (CSR) graph representation the rest of chargepath searches over, plus
// the three scalar graphs mechanically derived from a tradeoff graph
// (spec's Derived Graphs: MinDuration, MinConsumption, MaxConsumption).
//
// Graphs are immutable once built: Builder assembles them from an edge
// list exactly once, after which every field is read-only and safe to
// share across concurrently running queries without locking (spec's
// "shared read-only graph/potentials" concurrency model). This trades the
// teacher's mutable, lock-guarded core.Graph for a layout that a
// label-setting search can point-query millions of times per run without
// ever taking a lock.
package evgraph
