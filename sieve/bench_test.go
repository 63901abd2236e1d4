package sieve_test

import (
	"testing"

	"github.com/katalvlaran/lvlprime/sieve"
)

// benchTable is built once and shared across query benchmarks; the table is
// read-only so reuse is safe.
var benchTable = sieve.New(1_000_000)

// BenchmarkNew_Small measures sieve construction for a 10^4 bound.
func BenchmarkNew_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sieve.New(10_000)
	}
}

// BenchmarkNew_Large measures sieve construction for a 10^6 bound.
func BenchmarkNew_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sieve.New(1_000_000)
	}
}

// BenchmarkPrimeFactors_HighlyComposite decomposes 720720 (six distinct
// primes), the worst realistic shape for the cursor walk.
func BenchmarkPrimeFactors_HighlyComposite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for p, m := range benchTable.PrimeFactors(720_720) {
			_, _ = p, m
		}
	}
}

// BenchmarkPrimeFactors_PrimePower decomposes 2^19, the deepest
// single-prime division chain below 10^6.
func BenchmarkPrimeFactors_PrimePower(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for p, m := range benchTable.PrimeFactors(524_288) {
			_, _ = p, m
		}
	}
}

// BenchmarkFactors_HighlyComposite walks all 240 divisors of 720720 via the
// odometer enumeration.
func BenchmarkFactors_HighlyComposite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for d := range benchTable.Factors(720_720) {
			_ = d
		}
	}
}

// BenchmarkCoprime benchmarks the merge-walk on two factor-rich coprime
// inputs, forcing both cursors to run to exhaustion.
func BenchmarkCoprime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = benchTable.Coprime(510_510, 392_863) // 2·3·5·7·11·13·17 vs 19·23·29·31
	}
}

// BenchmarkIsPrime measures the O(1) lookup on a large prime.
func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = benchTable.IsPrime(999_983)
	}
}
