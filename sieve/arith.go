package sieve

// Classic multiplicative arithmetic functions, each a single fold over the
// factor cursor. All obey the same contract as PrimeFactors: 1 ≤ n ≤ Limit().

// Omega returns ω(n), the number of distinct prime factors of n.
// Omega(1) == 0.
func (t *Table) Omega(n uint32) uint32 {
	t.assertInRange(n, 1)

	var k uint32
	c := factorCursor{spf: t.spf, rem: n}
	for _, _, ok := c.next(); ok; _, _, ok = c.next() {
		k++
	}

	return k
}

// Totient returns Euler's φ(n): how many integers in [1, n] are coprime to
// n, computed as the product of p^(m-1)·(p-1) over the factorization.
// Totient(1) == 1.
func (t *Table) Totient(n uint32) uint32 {
	t.assertInRange(n, 1)

	phi := uint32(1)
	c := factorCursor{spf: t.spf, rem: n}
	for p, m, ok := c.next(); ok; p, m, ok = c.next() {
		phi *= p - 1
		for ; m > 1; m-- {
			phi *= p
		}
	}

	return phi
}

// Mobius returns the Möbius function μ(n): 0 if n has a squared prime
// factor, otherwise (-1)^ω(n). Mobius(1) == 1.
func (t *Table) Mobius(n uint32) int8 {
	t.assertInRange(n, 1)

	mu := int8(1)
	c := factorCursor{spf: t.spf, rem: n}
	for _, m, ok := c.next(); ok; _, m, ok = c.next() {
		if m > 1 {
			return 0
		}
		mu = -mu
	}

	return mu
}

// DivisorSum returns σ(n), the sum of all positive divisors of n, as the
// product of the geometric sums 1 + p + … + p^m. The result is uint64
// because σ(n) overflows 32 bits for n close to the 32-bit ceiling.
// DivisorSum(1) == 1.
func (t *Table) DivisorSum(n uint32) uint64 {
	t.assertInRange(n, 1)

	sigma := uint64(1)
	c := factorCursor{spf: t.spf, rem: n}
	for p, m, ok := c.next(); ok; p, m, ok = c.next() {
		term, pk := uint64(1), uint64(1)
		for ; m > 0; m-- {
			pk *= uint64(p)
			term += pk
		}
		sigma *= term
	}

	return sigma
}
