package ioformat

import "errors"

// ErrTruncated is returned when a binary derived-graph file ends before
// its declared length (first_edges.bin's node count, or a length implied
// by it) is satisfied.
var ErrTruncated = errors.New("ioformat: truncated file")

// ErrUnknownFuncTag is returned when weights.bin contains a fn_tag byte
// other than 0 (Linear), 1 (Hyperbolic), or 2 (Constant).
var ErrUnknownFuncTag = errors.New("ioformat: unknown function tag")

// ErrBadQueryRow is returned when a query CSV row doesn't parse into the
// id,start,target,min_consumption,max_consumption,rank shape.
var ErrBadQueryRow = errors.New("ioformat: malformed query row")
