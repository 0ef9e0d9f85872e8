package label

import "errors"

// ErrNodeOutOfRange describes a node id outside the graph a Container or
// Queue was sized for. Container and Queue methods do not return it.
var ErrNodeOutOfRange = errors.New("label: node out of range")
