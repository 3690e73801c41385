// Package naming gives every symmetry transform a deterministic identity.
//
// Identity parts:
//
//   - Variant index: Rank(perm)·2^n + mask. Permutations (lexicographic) are
//     the outer loop and masks (ascending) the inner loop, which reproduces
//     the historical numbering (psk_4_4 is psk_4_0x0_1_0). Index 0 is always
//     the canonical transform (mask 0, identity permutation).
//   - Structural name: "0xN_x0_x1..._xM" where N is the mask in lowercase hex
//     and x0..xM are the permutation's target positions. For one-bit symbols
//     the trivial permutation is omitted ("0x1"), as in the BPSK catalog.
//   - Full name: "<family>_<structural>", e.g. "psk_4_0x3_1_0".
//   - Legacy alias: "<family>_<index>", e.g. "psk_4_7". The canonical variant
//     also answers to the bare family name ("psk_4").
//
// Parse inverts Structural exactly, so a name always recovers the
// (mask, permutation) pair it was built from.
package naming
