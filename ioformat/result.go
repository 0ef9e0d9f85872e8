package ioformat

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
)

// ResultRecord is one line of the result JSON-lines file (spec §6).
type ResultRecord struct {
	ID             uint32    `json:"id"`
	Start          int32     `json:"start"`
	Target         int32     `json:"target"`
	MinDuration    float64   `json:"min_duration"`
	MinConsumption float64   `json:"min_consumption"`
	Path           []uint32  `json:"path"`
	Times          []float64 `json:"times"`
	Consumptions   []float64 `json:"consumptions"`
}

// InfeasibleResult builds the record spec §7 calls for when a query's
// target is unreachable under the battery capacity: an empty path with
// min_duration = +Inf, which json.Marshal would reject as a non-finite
// float; MarshalJSON below renders it as the string "Infinity".
func InfeasibleResult(id uint32, start, target int32) ResultRecord {
	return ResultRecord{ID: id, Start: start, Target: target, MinDuration: math.Inf(1)}
}

// MarshalJSON renders MinDuration as the JSON string "Infinity" when
// infeasible, since the JSON grammar has no numeric literal for
// infinity and the stdlib encoder rejects non-finite floats outright.
func (r ResultRecord) MarshalJSON() ([]byte, error) {
	type alias ResultRecord
	if math.IsInf(r.MinDuration, 1) {
		type shadow struct {
			alias
			MinDuration string `json:"min_duration"`
		}
		return json.Marshal(shadow{alias: alias(r), MinDuration: "Infinity"})
	}
	return json.Marshal(alias(r))
}

// WriteResults writes one JSON object per line to w, matching the
// result file format's "one per line" framing.
func WriteResults(w io.Writer, records []ResultRecord) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return bw.Flush()
}
