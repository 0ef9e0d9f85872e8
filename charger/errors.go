package charger

import "errors"

var (
	// ErrUnknownRate is returned by Model.Lookup when asked for a rate that
	// was never registered via Model.Register.
	ErrUnknownRate = errors.New("charger: unknown charging rate")

	// ErrNoChargers is returned by rate-extremum queries on a Model with no
	// registered charging rates.
	ErrNoChargers = errors.New("charger: no charging rates registered")
)
