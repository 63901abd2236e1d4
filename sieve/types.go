// Package sieve defines the Table type for the smallest-prime-factor sieve
// subpackage of github.com/katalvlaran/lvlprime.
package sieve

// maxDistinctPrimes bounds how many distinct primes a 32-bit integer can
// have: 2·3·5·7·11·13·17·19·23 = 223092870 < 2^32 < that product times 29.
const maxDistinctPrimes = 9

// Table is a smallest-prime-factor table over [0, N]. It is immutable once
// built by New; spf[n] holds the least prime dividing n for 2 ≤ n ≤ N, and
// spf[0], spf[1] are unused sentinels never read by any query.
//
// Invariants for all 2 ≤ n ≤ N:
//   - spf[n] is prime and divides n;
//   - no prime smaller than spf[n] divides n;
//   - spf[n] == n exactly when n is prime.
type Table struct {
	spf []uint32
}

// Limit returns the inclusive upper bound N the table was built for.
func (t *Table) Limit() uint32 {
	return uint32(len(t.spf) - 1)
}
