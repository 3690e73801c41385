package symmetry

import "fmt"

// Apply derives a new labeling from symbols:
//
//	for each point index x in [0, 2^n):
//	    derived[x] = t.Mask XOR t.Perm.Apply(symbols[x])
//
// The point at position x keeps its location; only its label changes.
// The input is never modified. With a bijective input the output is a
// bijection too; callers that need certainty run ValidateBijection.
//
// Contract:
//   - Output length equals input length.
//   - Deterministic: equal inputs always give equal outputs.
//
// Errors:
//   - ErrInvalidTransform        — t fails Validate.
//   - ErrGeometryLengthMismatch  — len(symbols) != 2^n.
//
// Complexity: O(n·2^n).
func Apply(symbols []int, t Transform) ([]int, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodApply, err)
	}
	size := 1 << uint(t.BitWidth())
	if len(symbols) != size {
		return nil, wrapf(methodApply, ErrGeometryLengthMismatch, "want %d symbols, got %d", size, len(symbols))
	}
	derived := make([]int, size)
	for x, s := range symbols {
		derived[x] = t.Map(s)
	}

	return derived, nil
}
