package sieve

import "errors"

// Sentinel errors used as panic values when the package is built with the
// sievecheck tag. Without the tag no query validates its arguments.
var (
	// ErrZeroValue indicates 0 was passed where the contract requires n ≥ 1.
	ErrZeroValue = errors.New("sieve: argument must be positive")
	// ErrOutOfRange indicates an argument beyond the sieved bound N.
	ErrOutOfRange = errors.New("sieve: argument outside the sieved range")
)
