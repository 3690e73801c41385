package bitperm

// Rank returns the lexicographic position of p among Permutations(len(p)),
// computed from its Lehmer code.
// Complexity: O(n²).
func Rank(p Perm) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, wrapf(methodRank, ErrInvalidPermutation, "%v", []int(p))
	}
	n := len(p)
	rank := 0
	for i := 0; i < n; i++ {
		// Count smaller targets to the right of position i.
		smaller := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				smaller++
			}
		}
		rank += smaller * Factorial(n-1-i)
	}

	return rank, nil
}

// Unrank returns the permutation at lexicographic position r for width n.
// It is the inverse of Rank: Rank(Unrank(n, r)) == r for 0 ≤ r < n!.
// Complexity: O(n²).
func Unrank(n, r int) (Perm, error) {
	if err := CheckOrder(n); err != nil {
		return nil, wrapf(methodUnrank, ErrInvalidOrder, "n=%d", n)
	}
	if r < 0 || r >= Factorial(n) {
		return nil, wrapf(methodUnrank, ErrInvalidPermutation, "rank %d out of [0,%d)", r, Factorial(n))
	}
	avail := Identity(n)
	p := make(Perm, 0, n)
	for i := n - 1; i >= 0; i-- {
		f := Factorial(i)
		d := r / f
		r %= f
		p = append(p, avail[d])
		avail = append(avail[:d], avail[d+1:]...)
	}

	return p, nil
}
