// Package bitperm enumerates the two generator sets of the hyperoctahedral
// group acting on n-bit symbol codes: bit-position permutations and XOR masks.
//
// What:
//
//   - Perm is a bijection on bit positions {0..n-1}; Perm[i] is the position
//     that source bit i is relocated to.
//   - Permutations(n) lists all n! permutations in lexicographic order,
//     identity first. The order is produced by the classic next-permutation
//     step, so no duplicate can ever be emitted.
//   - Masks(n) lists all 2^n XOR masks in ascending order.
//   - Rank/Unrank convert between a permutation and its lexicographic position
//     (Lehmer code) without materializing the whole list.
//
// Bounds:
//
//   - MinBitWidth ≤ n ≤ MaxBitWidth. Anything else fails with ErrInvalidOrder:
//     at n = 9 the transform set already holds 9!·2^9 ≈ 1.9·10^8 entries.
//
// Complexity:
//
//   - Permutations: O(n·n!) time and memory.
//   - Masks:        O(2^n).
//   - Rank/Unrank:  O(n²).
//
// Errors:
//
//   - ErrInvalidOrder:       bit width outside [MinBitWidth, MaxBitWidth].
//   - ErrInvalidPermutation: malformed Perm (length, range, repeated target).
package bitperm
