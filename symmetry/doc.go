// Package symmetry applies hyperoctahedral-group elements to symbol
// labelings and checks that the results are still labelings.
//
// A Transform is the pair (Mask, Perm). It maps an n-bit code x to
//
//	f(x) = Mask XOR Perm.Apply(x)
//
// The order is fixed: permute first, then XOR. Masking first would give
// Perm.Apply(Mask XOR x), a different group element whenever Perm moves a
// set bit of Mask.
//
// Apply relabels a base symbol list point by point: the geometric point at
// position x keeps its coordinates and receives the label f(symbols[x]).
// Enumerate lists the whole group for a bit width in variant-index order
// (permutations outer, masks inner), so element i of the result is the
// transform behind variant index i.
//
// Validator:
//
//   - ValidateBijection rejects any labeling that is not a permutation of
//     {0..len-1} with ErrNonBijectiveMapping. Transforms are bijective by
//     construction, so a failure signals a defect, not bad input.
//   - HammingPreserving confirms that two labelings have identical pairwise
//     Hamming distances; every group element is a hypercube isometry.
package symmetry
