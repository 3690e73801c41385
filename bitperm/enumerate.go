package bitperm

// Factorial returns n! for 0 ≤ n ≤ MaxBitWidth; callers validate n first.
func Factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// Permutations returns all n! permutations of {0..n-1} in lexicographic order
// over their target sequences. The first element is always Identity(n).
//
// Algorithm:
//  1. Start from the identity (the lexicographically smallest sequence).
//  2. Emit a copy, then advance with nextPermutation until it reports the
//     last (descending) sequence.
//
// Each step produces the strict lexicographic successor, so the output is
// duplicate-free by construction.
//
// Complexity: O(n·n!) time and memory.
func Permutations(n int) ([]Perm, error) {
	if err := CheckOrder(n); err != nil {
		return nil, wrapf(methodPermutations, ErrInvalidOrder, "n=%d", n)
	}
	out := make([]Perm, 0, Factorial(n))
	cur := Identity(n)
	for {
		out = append(out, cur.Clone())
		if !nextPermutation(cur) {
			break
		}
	}

	return out, nil
}

// Masks returns the 2^n XOR masks 0..2^n-1 in ascending order.
// Complexity: O(2^n).
func Masks(n int) ([]int, error) {
	if err := CheckOrder(n); err != nil {
		return nil, wrapf(methodMasks, ErrInvalidOrder, "n=%d", n)
	}
	out := make([]int, 1<<uint(n))
	for k := range out {
		out[k] = k
	}

	return out, nil
}

// nextPermutation rearranges a into its lexicographic successor in place.
// It returns false, leaving a untouched, when a is already the last
// (strictly descending) arrangement.
func nextPermutation(a []int) bool {
	// Find the rightmost ascent a[i] < a[i+1].
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Swap a[i] with the rightmost element larger than it.
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	// The suffix is descending; reverse it to make it the smallest.
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}
