package sieve_test

import (
	"testing"

	"github.com/katalvlaran/lvlprime/sieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallestDivisor returns the least d ≥ 2 dividing n, by trial division.
// Reference oracle for table invariants.
func smallestDivisor(n uint32) uint32 {
	for d := uint32(2); d*d <= n; d++ {
		if n%d == 0 {
			return d
		}
	}

	return n
}

// TestNew_SmallLimits verifies construction succeeds for degenerate bounds
// and that Limit reports the configured N.
func TestNew_SmallLimits(t *testing.T) {
	for _, limit := range []uint32{0, 1, 2, 3, 10} {
		tbl := sieve.New(limit)
		require.NotNil(t, tbl)
		assert.Equal(t, limit, tbl.Limit(), "Limit must echo the construction bound")
	}
}

// TestNew_MinimalTable mirrors the smallest meaningful sieve: N = 2.
func TestNew_MinimalTable(t *testing.T) {
	tbl := sieve.New(2)
	assert.True(t, tbl.IsPrime(2), "2 must be prime in the minimal table")
	assert.Equal(t, [][2]uint32{{2, 1}}, collectPairs(tbl.PrimeFactors(2)))
}

// TestNew_SmallestFactorInvariant checks, against trial division, that the
// first prime reported for every n is exactly its least divisor, and that
// IsPrime agrees with that divisor being n itself.
func TestNew_SmallestFactorInvariant(t *testing.T) {
	const limit = 1000
	tbl := sieve.New(limit)
	for n := uint32(2); n <= limit; n++ {
		want := smallestDivisor(n)

		pairs := collectPairs(tbl.PrimeFactors(n))
		require.NotEmpty(t, pairs, "n=%d must have at least one prime factor", n)
		assert.Equal(t, want, pairs[0][0], "smallest prime factor of %d", n)
		assert.Equal(t, want == n, tbl.IsPrime(n), "IsPrime(%d)", n)
	}
}
