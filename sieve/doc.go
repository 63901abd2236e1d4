// Package sieve provides a precomputed smallest-prime-factor table for
// O(log n) amortized factorization queries over a bounded integer range.
//
// What:
//
//   - Table stores, for every 2 ≤ n ≤ N, the smallest prime dividing n.
//   - One construction pass (New) buys primality testing in O(1), prime
//     factorization and coprimality in O(log n), and lazy divisor
//     enumeration — all without further allocation per query.
//   - Query results are iter.Seq / iter.Seq2 cursors: lazy, restartable by
//     re-ranging, independent per call.
//
// Why:
//
//   - Combinatorics: divisor counts, totients and Möbius values in bulk.
//   - Repeated factorization over a known range beats per-call trial
//     division by orders of magnitude.
//   - Fraction reduction, coprime pairing, multiplicative-function sieving.
//
// Complexity:
//
//   - New:          O(N log log N) time, O(N) memory.
//   - IsPrime:      O(1).
//   - PrimeFactors: O(log n) per full walk, ≤ 9 distinct primes for 32-bit n.
//   - Factors:      O(d(n)) emissions, O(1) extra memory (odometer).
//   - Coprime:      O(ω(a) + ω(b)) comparisons.
//
// Contract:
//
//	Arguments must lie in [1, N] ([2, N] for IsPrime). Violations are the
//	caller's fault: build with -tags sievecheck to panic with ErrZeroValue /
//	ErrOutOfRange at the call site; without the tag an out-of-range argument
//	hits Go's ordinary bounds check instead.
//
// Concurrency:
//
//	A Table is immutable after New. Share it across any number of goroutines
//	without locks; every cursor owns its position state and only reads.
//
// See example_test.go for runnable scenarios.
package sieve
