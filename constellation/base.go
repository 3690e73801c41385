package constellation

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/graymap/symmetry"
)

// NewBase validates and deep-copies a base constellation.
//
// Contract:
//   - family is non-empty (ErrEmptyFamily).
//   - len(points) == len(symbols) (symmetry.ErrGeometryLengthMismatch).
//   - symbols is a permutation of {0..len-1} (symmetry.ErrNonBijectiveMapping).
//   - all Meta fields > 0 (ErrBadMeta).
//
// The length is not required to be a power of two here; the registry
// checks it against the requested bit width.
func NewBase(family string, points []complex128, symbols []int, meta Meta) (*Base, error) {
	if family == "" {
		return nil, ErrEmptyFamily
	}
	if len(points) != len(symbols) {
		return nil, fmt.Errorf("NewBase %s: %d points vs %d symbols: %w", family, len(points), len(symbols), symmetry.ErrGeometryLengthMismatch)
	}
	if err := symmetry.ValidateBijection(symbols); err != nil {
		return nil, fmt.Errorf("NewBase %s: %w", family, err)
	}
	if meta.RotationalSymmetry <= 0 || meta.Dimensionality <= 0 || meta.Sectors <= 0 {
		return nil, fmt.Errorf("NewBase %s: %+v: %w", family, meta, ErrBadMeta)
	}

	b := &Base{
		family:  family,
		points:  make([]complex128, len(points)),
		symbols: make([]int, len(symbols)),
		meta:    meta,
	}
	copy(b.points, points)
	copy(b.symbols, symbols)

	return b, nil
}

// Family returns the name prefix, e.g. "psk_4".
func (b *Base) Family() string { return b.family }

// Len returns the number of points (2^n for a well-formed base).
func (b *Base) Len() int { return len(b.points) }

// BitWidth returns log2(Len()) or -1 when Len() is not a power of two.
func (b *Base) BitWidth() int {
	n := len(b.points)
	if n == 0 || n&(n-1) != 0 {
		return -1
	}

	return bits.TrailingZeros(uint(n))
}

// Meta returns the descriptive metadata.
func (b *Base) Meta() Meta { return b.meta }

// Points returns a copy of the geometry, indexed by point position.
func (b *Base) Points() []complex128 {
	out := make([]complex128, len(b.points))
	copy(out, b.points)

	return out
}

// Symbols returns a copy of the base labeling.
func (b *Base) Symbols() []int {
	out := make([]int, len(b.symbols))
	copy(out, b.symbols)

	return out
}

// pointAt returns the point at index i without copying the slice.
func (b *Base) pointAt(i int) complex128 { return b.points[i] }
