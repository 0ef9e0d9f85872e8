package potential

import "errors"

// ErrTargetNotFound is returned when ScalarDijkstra is asked to run a
// reverse search from a target node outside the graph.
var ErrTargetNotFound = errors.New("potential: target node out of range")

// ErrNoLandmarks is returned when a Landmark potential is constructed
// with an empty landmark set.
var ErrNoLandmarks = errors.New("potential: at least one landmark is required")
