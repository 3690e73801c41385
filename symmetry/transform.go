package symmetry

import (
	"fmt"

	"github.com/katalvlaran/graymap/bitperm"
)

// Transform is one element of the hyperoctahedral group on n-bit codes.
// Two transforms are equal iff both Mask and Perm are equal.
type Transform struct {
	// Mask is XOR'ed into the permuted code; 0 ≤ Mask < 2^n.
	Mask int
	// Perm relocates bit i to bit Perm[i]; len(Perm) is the bit width n.
	Perm bitperm.Perm
}

// New builds a Transform and validates it. perm is copied.
// Errors: ErrInvalidTransform (wrapping bitperm.ErrInvalidPermutation when the permutation is at fault).
// Complexity: O(n).
func New(mask int, perm bitperm.Perm) (Transform, error) {
	t := Transform{Mask: mask, Perm: perm.Clone()}
	if err := t.Validate(); err != nil {
		return Transform{}, err
	}

	return t, nil
}

// IdentityTransform returns (0, identity) for width n.
func IdentityTransform(n int) Transform {
	return Transform{Mask: 0, Perm: bitperm.Identity(n)}
}

// BitWidth returns n.
func (t Transform) BitWidth() int { return len(t.Perm) }

// IsIdentity reports whether t is (0, identity).
func (t Transform) IsIdentity() bool { return t.Mask == 0 && t.Perm.IsIdentity() }

// Equal compares both components.
func (t Transform) Equal(o Transform) bool {
	return t.Mask == o.Mask && t.Perm.Equal(o.Perm)
}

// Clone returns a copy that shares no memory with t.
func (t Transform) Clone() Transform {
	return Transform{Mask: t.Mask, Perm: t.Perm.Clone()}
}

// Validate checks the permutation and the mask range.
// Complexity: O(n).
func (t Transform) Validate() error {
	if err := t.Perm.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", methodTransform, ErrInvalidTransform, err)
	}
	if t.Mask < 0 || t.Mask >= 1<<uint(len(t.Perm)) {
		return wrapf(methodTransform, ErrInvalidTransform, "mask %d out of [0,%d)", t.Mask, 1<<uint(len(t.Perm)))
	}

	return nil
}

// Map returns Mask XOR Perm.Apply(x).
// Complexity: O(n).
func (t Transform) Map(x int) int {
	return t.Mask ^ t.Perm.Apply(x)
}

// String renders t as "mask=0x1 perm=[0 1]".
func (t Transform) String() string {
	return fmt.Sprintf("mask=0x%x perm=%v", t.Mask, t.Perm)
}

// Compose returns the transform equivalent to applying a and then b:
// Compose(b, a).Map(x) == b.Map(a.Map(x)).
//
// Derivation (Perm is linear over XOR):
//
//	b(a(x)) = Mb ^ Pb(Ma ^ Pa(x)) = (Mb ^ Pb(Ma)) ^ (Pb∘Pa)(x)
//
// Both transforms must share the same bit width.
//
// Complexity: O(n).
func Compose(b, a Transform) Transform {
	return Transform{
		Mask: b.Mask ^ b.Perm.Apply(a.Mask),
		Perm: b.Perm.Compose(a.Perm),
	}
}

// Inverse returns t⁻¹ with Inverse(t).Map(t.Map(x)) == x.
//
//	x = P⁻¹(y ^ M) = P⁻¹(M) ^ P⁻¹(y)
//
// Complexity: O(n).
func Inverse(t Transform) Transform {
	inv := t.Perm.Inverse()

	return Transform{Mask: inv.Apply(t.Mask), Perm: inv}
}

// Enumerate returns all 2^n·n! transforms for width n in variant-index
// order: permutations in lexicographic order on the outside, masks ascending
// on the inside. Element 0 is the identity transform.
// Complexity: O(n·n!·2^n).
func Enumerate(n int) ([]Transform, error) {
	perms, err := bitperm.Permutations(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}
	masks, err := bitperm.Masks(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}
	out := make([]Transform, 0, len(perms)*len(masks))
	for _, p := range perms {
		for _, k := range masks {
			// Perm slices are shared across masks; nothing mutates them.
			out = append(out, Transform{Mask: k, Perm: p})
		}
	}

	return out, nil
}
