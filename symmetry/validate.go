package symmetry

import "math/bits"

// ValidateBijection confirms that symbols is a permutation of
// {0..len(symbols)-1}. An empty list is rejected.
// Complexity: O(len(symbols)) time and memory.
func ValidateBijection(symbols []int) error {
	if len(symbols) == 0 {
		return wrapf(methodValidate, ErrNonBijectiveMapping, "empty labeling")
	}
	seen := make([]bool, len(symbols))
	for x, s := range symbols {
		if s < 0 || s >= len(symbols) {
			return wrapf(methodValidate, ErrNonBijectiveMapping, "point %d has symbol %d out of range", x, s)
		}
		if seen[s] {
			return wrapf(methodValidate, ErrNonBijectiveMapping, "symbol %d assigned twice", s)
		}
		seen[s] = true
	}

	return nil
}

// HammingPreserving reports whether, for every pair of point indices (i, j),
// the Hamming distance between a[i] and a[j] equals that between b[i] and b[j].
// Slices of different length never match.
// Complexity: O(len²).
func HammingPreserving(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if hamming(a[i], a[j]) != hamming(b[i], b[j]) {
				return false
			}
		}
	}

	return true
}

func hamming(x, y int) int {
	return bits.OnesCount(uint(x ^ y))
}
