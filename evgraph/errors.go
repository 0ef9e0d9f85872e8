package evgraph

import "errors"

var (
	// ErrInvalidNode is returned when a node ID is out of [0, NumNodes) range.
	ErrInvalidNode = errors.New("evgraph: node id out of range")

	// ErrUnsortedEdges describes edges not grouped by source node. Builder.Build
	// sorts edges by source itself and does not return it.
	ErrUnsortedEdges = errors.New("evgraph: edges must be added in non-decreasing source-node order")

	// ErrWeightCountMismatch is returned when a derived-graph constructor is
	// given a weight slice whose length doesn't match the source topology's
	// edge count.
	ErrWeightCountMismatch = errors.New("evgraph: weight count does not match edge count")
)
