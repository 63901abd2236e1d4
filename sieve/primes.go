package sieve

import "iter"

// IsPrime reports whether n is prime, by a single table lookup: n is prime
// exactly when it is its own smallest prime factor.
//
// Contract: 2 ≤ n ≤ Limit(). Complexity: O(1).
func (t *Table) IsPrime(n uint32) bool {
	t.assertInRange(n, 2)

	return t.spf[n] == n
}

// Primes returns a lazy, strictly increasing sequence of every prime up to
// Limit(), found by scanning the table for fixed points. Each range over
// the result restarts from 2.
//
// Example:
//
//	for p := range t.Primes() {
//	    fmt.Println(p) // 2, 3, 5, 7, …
//	}
func (t *Table) Primes() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := uint64(2); i < uint64(len(t.spf)); i++ {
			if t.spf[i] == uint32(i) {
				if !yield(uint32(i)) {
					return
				}
			}
		}
	}
}

// Coprime reports whether gcd(a, b) == 1 by merge-walking the two strictly
// increasing factor cursors, like a sorted merge-join: advance whichever
// side holds the smaller prime, and stop the moment both sides agree on
// one. Neither factor set is materialized.
//
// Contract: 1 ≤ a, b ≤ Limit(). Complexity: O(ω(a) + ω(b)) comparisons.
func (t *Table) Coprime(a, b uint32) bool {
	t.assertInRange(a, 1)
	t.assertInRange(b, 1)

	ca := factorCursor{spf: t.spf, rem: a}
	cb := factorCursor{spf: t.spf, rem: b}
	pa, _, oka := ca.next()
	pb, _, okb := cb.next()
	for oka && okb {
		switch {
		case pa == pb:
			return false // shared prime: gcd(a, b) > 1
		case pa < pb:
			pa, _, oka = ca.next()
		default:
			pb, _, okb = cb.next()
		}
	}

	return true
}
