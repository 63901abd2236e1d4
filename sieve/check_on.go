//go:build sievecheck

package sieve

// assertInRange enforces the caller contract lo ≤ n ≤ Limit() when the
// package is built with the sievecheck tag, panicking with the matching
// sentinel error. See check_off.go for the release-mode no-op.
func (t *Table) assertInRange(n, lo uint32) {
	if n == 0 {
		panic(ErrZeroValue)
	}
	if n < lo || uint64(n) >= uint64(len(t.spf)) {
		panic(ErrOutOfRange)
	}
}
