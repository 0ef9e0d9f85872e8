// Package ioformat reads and writes the on-disk formats the query runner
// deals with (spec §6): the binary derived-graph files, the CSV query
// file, and the JSON-lines result file.
//
// Every format here is a small, fixed, host-endian/line-oriented layout
// with no compression, versioning, or schema evolution to speak of, so
// this package deliberately stays on encoding/binary, encoding/csv, and
// encoding/json rather than reaching for a serialization library: there
// is no wire-format negotiation, streaming codec, or schema registry for
// a third-party library to add value over the standard library's direct
// struct-to-bytes mapping (see DESIGN.md).
package ioformat
