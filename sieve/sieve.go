package sieve

// New builds the smallest-prime-factor table for every integer up to and
// including limit.
//
// Algorithm outline:
//  1. Allocate spf of length limit+1, zeroed ("unset").
//  2. For i = 2..limit: if spf[i] is set, i is composite and already owned
//     by a smaller prime — skip. Otherwise i is prime; stamp i into every
//     still-unset multiple j = i, 2i, 3i, … ≤ limit. Because multiples are
//     visited in increasing prime order, the first stamp a slot receives is
//     its smallest prime factor.
//
// Complexity: O(limit·log log limit) time, O(limit) memory. The only
// failure mode is allocation failure, which is fatal (runtime panic); there
// is no partial-construction recovery.
//
// Example:
//
//	t := sieve.New(100)
//	t.IsPrime(97) // true
func New(limit uint32) *Table {
	// 64-bit loop indices: j += i on uint32 could wrap near the top of the
	// 32-bit range.
	size := uint64(limit) + 1
	spf := make([]uint32, size)
	for i := uint64(2); i < size; i++ {
		if spf[i] != 0 {
			continue
		}
		for j := i; j < size; j += i {
			if spf[j] == 0 {
				spf[j] = uint32(i)
			}
		}
	}

	return &Table{spf: spf}
}
