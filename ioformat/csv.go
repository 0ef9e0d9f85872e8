package ioformat

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// Query is one row of the query CSV (spec §6): header
// id,start,target,min_consumption,max_consumption,rank. The last three
// columns may be omitted from a row; MinConsumption/MaxConsumption/Rank
// are left at their zero value when absent.
type Query struct {
	ID                             uint32
	Start, Target                  int32
	MinConsumption, MaxConsumption float64
	Rank                           uint32
}

// ReadQueries parses the query CSV file at path, skipping the header row.
func ReadQueries(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var out []Query
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		q, err := parseQueryRow(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func parseQueryRow(rec []string) (Query, error) {
	if len(rec) < 3 {
		return Query{}, ErrBadQueryRow
	}
	id, err := strconv.ParseUint(rec[0], 10, 32)
	if err != nil {
		return Query{}, ErrBadQueryRow
	}
	start, err := strconv.ParseInt(rec[1], 10, 32)
	if err != nil {
		return Query{}, ErrBadQueryRow
	}
	target, err := strconv.ParseInt(rec[2], 10, 32)
	if err != nil {
		return Query{}, ErrBadQueryRow
	}
	q := Query{ID: uint32(id), Start: int32(start), Target: int32(target)}

	if len(rec) > 3 && rec[3] != "" {
		v, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return Query{}, ErrBadQueryRow
		}
		q.MinConsumption = v
	}
	if len(rec) > 4 && rec[4] != "" {
		v, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return Query{}, ErrBadQueryRow
		}
		q.MaxConsumption = v
	}
	if len(rec) > 5 && rec[5] != "" {
		v, err := strconv.ParseUint(rec[5], 10, 32)
		if err != nil {
			return Query{}, ErrBadQueryRow
		}
		q.Rank = uint32(v)
	}
	return q, nil
}
