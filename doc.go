// Package lvlprime is your in-memory toolbox for fast, repeated
// number-theoretic queries over a bounded integer range — factorization,
// primality, divisors and coprimality in O(log n) per query.
//
// 🚀 What is lvlprime?
//
//	A modern, zero-I/O library built around one precomputed table:
//		• Smallest-prime-factor sieve: one O(N log log N) pass, then cheap queries
//		• Primality: a single table lookup
//		• Prime factorization: lazy (prime, multiplicity) streams
//		• Divisor enumeration: on-demand, no materialized lists
//		• Coprimality: merge-walk over two factor streams, no gcd loop
//		• Arithmetic functions: φ, μ, ω, σ straight off the same table
//
// ✨ Why choose lvlprime?
//
//   - Predictable — every query is a bounded, terminating computation
//   - Share freely — the table is immutable after construction; any number
//     of goroutines may query it concurrently without locks
//   - Lazy by default — queries return iter.Seq cursors, not slices
//   - Pure Go — no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	sieve/ — the SmallestPrimeFactor table: construction + query layer
//
// Quick sketch:
//
//	t := sieve.New(1_000_000)
//	t.IsPrime(999983)              // true, O(1)
//	for p, m := range t.PrimeFactors(720) {
//	    fmt.Println(p, m)          // 2 4; 3 2; 5 1
//	}
//
// Pick the bound N as large as your workload queries; asking about n > N is
// outside the contract (see the sieve package docs for the checked build mode).
//
//	go get github.com/katalvlaran/lvlprime/sieve
package lvlprime
