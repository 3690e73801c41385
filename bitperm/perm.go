package bitperm

import "fmt"

// Bounds for the supported bit width.
const (
	// MinBitWidth is the smallest symbol width (BPSK).
	MinBitWidth = 1
	// MaxBitWidth is the largest width accepted before factorial blow-up;
	// 8!·2^8 = 10 321 920 transforms.
	MaxBitWidth = 8
)

// Perm is a permutation of bit positions. Perm[i] is the position that
// bit i of a source code moves to.
type Perm []int

// CheckOrder reports ErrInvalidOrder if n is outside [MinBitWidth, MaxBitWidth].
// Complexity: O(1).
func CheckOrder(n int) error {
	if n < MinBitWidth || n > MaxBitWidth {
		return fmt.Errorf("bit width must be in [%d,%d], got %d: %w", MinBitWidth, MaxBitWidth, n, ErrInvalidOrder)
	}

	return nil
}

// Identity returns the identity permutation [0 1 ... n-1].
// n ≤ 0 yields an empty Perm.
func Identity(n int) Perm {
	if n <= 0 {
		return Perm{}
	}
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Len returns the number of bit positions.
func (p Perm) Len() int { return len(p) }

// IsIdentity reports whether every bit stays in place.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same permutation.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	c := make(Perm, len(p))
	copy(c, p)

	return c
}

// Validate checks that p is a bijection on {0..len(p)-1} and that len(p)
// is an accepted bit width.
// Complexity: O(n).
func (p Perm) Validate() error {
	if err := CheckOrder(len(p)); err != nil {
		return wrapf(methodValidate, ErrInvalidPermutation, "length %d", len(p))
	}
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return wrapf(methodValidate, ErrInvalidPermutation, "target %d of bit %d out of range", v, i)
		}
		if seen[v] {
			return wrapf(methodValidate, ErrInvalidPermutation, "target %d repeated", v)
		}
		seen[v] = true
	}

	return nil
}

// Apply relocates bit i of x to bit position p[i]. Bits of x at or above
// len(p) are dropped. p must be valid.
// Complexity: O(n).
func (p Perm) Apply(x int) int {
	var out int
	for i, target := range p {
		if x>>uint(i)&1 == 1 {
			out |= 1 << uint(target)
		}
	}

	return out
}

// Inverse returns q such that q.Apply(p.Apply(x)) == x.
func (p Perm) Inverse() Perm {
	inv := make(Perm, len(p))
	for i, v := range p {
		inv[v] = i
	}

	return inv
}

// Compose returns the permutation that applies q first and then p:
// p.Compose(q).Apply(x) == p.Apply(q.Apply(x)). Both must have equal length.
func (p Perm) Compose(q Perm) Perm {
	out := make(Perm, len(q))
	for i, v := range q {
		out[i] = p[v]
	}

	return out
}

// String renders p as its target positions, e.g. "[1 0]".
func (p Perm) String() string {
	return fmt.Sprint([]int(p))
}
