package search

import "errors"

// ErrSourceOutOfRange is returned when Run is given a source node id
// outside the graph.
var ErrSourceOutOfRange = errors.New("search: source node out of range")

// ErrTargetOutOfRange is returned when Run is given a target node id
// outside the graph.
var ErrTargetOutOfRange = errors.New("search: target node out of range")

// ErrNoPath is returned by Reconstruct when a label's ParentEntry does not
// index its parent node's settled labels, or the parent chain grows past
// 2^20 hops (a corrupted chain). The source's own zero label is not an
// error: it reconstructs to a single step.
var ErrNoPath = errors.New("search: no parent chain to source")
