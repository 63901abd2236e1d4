package sieve

import "iter"

// factorCursor walks the prime factorization of a single value. It borrows
// the shared table read-only and owns nothing but its remainder, so any
// number of cursors — including several over the same n — may advance
// independently and concurrently.
type factorCursor struct {
	spf []uint32
	rem uint32
}

// next pops the smallest remaining prime together with its multiplicity.
// ok is false once the remainder has been reduced to 1.
func (c *factorCursor) next() (p, m uint32, ok bool) {
	if c.rem == 1 {
		return 0, 0, false
	}
	p = c.spf[c.rem]
	c.rem /= p
	m = 1
	// spf[1] is the zero sentinel, so this terminates at rem == 1.
	for c.spf[c.rem] == p {
		c.rem /= p
		m++
	}

	return p, m, true
}

// PrimeFactors returns the prime factorization of n as a lazy sequence of
// (prime, multiplicity) pairs in strictly increasing prime order. n == 1
// yields an empty sequence. Each range over the result is an independent
// cursor, so the sequence may be consumed any number of times.
//
// Contract: 1 ≤ n ≤ Limit(). Complexity: O(log n) for a full walk.
//
// Example:
//
//	for p, m := range t.PrimeFactors(360) {
//	    fmt.Println(p, m) // 2 3; 3 2; 5 1
//	}
func (t *Table) PrimeFactors(n uint32) iter.Seq2[uint32, uint32] {
	t.assertInRange(n, 1)

	return func(yield func(uint32, uint32) bool) {
		c := factorCursor{spf: t.spf, rem: n}
		for p, m, ok := c.next(); ok; p, m, ok = c.next() {
			if !yield(p, m) {
				return
			}
		}
	}
}

// FactorsCount returns d(n), the number of positive divisors of n: the
// product of (multiplicity+1) over the prime factorization.
//
// Contract: 1 ≤ n ≤ Limit(). FactorsCount(1) == 1.
func (t *Table) FactorsCount(n uint32) uint32 {
	t.assertInRange(n, 1)

	count := uint32(1)
	c := factorCursor{spf: t.spf, rem: n}
	for _, m, ok := c.next(); ok; _, m, ok = c.next() {
		count *= m + 1
	}

	return count
}

// Factors returns every positive divisor of n exactly once, lazily, in
// unspecified order. The divisor set is the Cartesian product of per-prime
// exponent choices {p^0 … p^m}; rather than recursing over that product,
// the iterator keeps an odometer of exponent digits and emits one divisor
// per increment, so no divisor list is ever materialized.
//
// Contract: 1 ≤ n ≤ Limit(). Exactly FactorsCount(n) values are produced.
//
// Example (sort before relying on order):
//
//	divs := slices.Sorted(t.Factors(24)) // [1 2 3 4 6 8 12 24]
func (t *Table) Factors(n uint32) iter.Seq[uint32] {
	t.assertInRange(n, 1)

	return func(yield func(uint32) bool) {
		var primes, mult [maxDistinctPrimes]uint32
		k := 0
		c := factorCursor{spf: t.spf, rem: n}
		for p, m, ok := c.next(); ok; p, m, ok = c.next() {
			primes[k], mult[k] = p, m
			k++
		}

		var exp [maxDistinctPrimes]uint32
		d := uint32(1)
		for {
			if !yield(d) {
				return
			}
			// Advance the odometer: bump the lowest digit with headroom,
			// resetting exhausted digits below it.
			i := 0
			for ; i < k; i++ {
				if exp[i] < mult[i] {
					exp[i]++
					d *= primes[i]

					break
				}
				for ; exp[i] > 0; exp[i]-- {
					d /= primes[i]
				}
			}
			if i == k {
				return // every digit rolled over: enumeration complete
			}
		}
	}
}
