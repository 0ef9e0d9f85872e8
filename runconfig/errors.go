package runconfig

import "errors"

// ErrInvalidConfig wraps every configuration-layer rejection (unknown
// potential/heuristic name, negative capacity, negative epsilon). The
// caller's %w-wrapped message names the offending field.
var ErrInvalidConfig = errors.New("invalid configuration")
