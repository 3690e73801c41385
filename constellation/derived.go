package constellation

import (
	"fmt"

	"github.com/katalvlaran/graymap/symmetry"
)

// NewDerived relabels base with t, validates the result, and stamps id.
//
// Errors:
//   - ErrNilBase.
//   - symmetry.ErrInvalidTransform / ErrGeometryLengthMismatch from symmetry.Apply.
//   - symmetry.ErrNonBijectiveMapping if the labeling is broken (a defect).
//
// Complexity: O(n·2^n).
func NewDerived(base *Base, t symmetry.Transform, id Identity) (*Derived, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	symbols, err := symmetry.Apply(base.symbols, t)
	if err != nil {
		return nil, fmt.Errorf("NewDerived %s: %w", id.Name, err)
	}
	if err = symmetry.ValidateBijection(symbols); err != nil {
		return nil, fmt.Errorf("NewDerived %s: %w", id.Name, err)
	}
	aliases := make([]string, len(id.Aliases))
	copy(aliases, id.Aliases)

	return &Derived{
		base:       base,
		transform:  t.Clone(),
		symbols:    symbols,
		index:      id.Index,
		structural: id.Structural,
		name:       id.Name,
		aliases:    aliases,
	}, nil
}

// Base returns the constellation this variant was derived from.
// Complexity: O(1).
func (d *Derived) Base() *Base { return d.base }

// Index returns the dense variant index.
// Complexity: O(1).
func (d *Derived) Index() int { return d.index }

// Name returns the family-qualified structural name, e.g. "psk_4_0x1_0_1".
func (d *Derived) Name() string { return d.name }

// Structural returns the bare structural name, e.g. "0x1_0_1".
func (d *Derived) Structural() string { return d.structural }

// Aliases returns a copy of the alias names.
// Complexity: O(len(aliases)).
func (d *Derived) Aliases() []string {
	out := make([]string, len(d.aliases))
	copy(out, d.aliases)

	return out
}

// Transform returns a copy of the generating transform.
// Complexity: O(n).
func (d *Derived) Transform() symmetry.Transform { return d.transform.Clone() }

// IsCanonical reports whether this is the (0, identity) variant.
// Complexity: O(n).
func (d *Derived) IsCanonical() bool { return d.transform.IsIdentity() }

// Len returns the number of points.
func (d *Derived) Len() int { return len(d.symbols) }

// Symbols returns a copy of the labeling, indexed by point position.
// Complexity: O(2^n).
func (d *Derived) Symbols() []int {
	out := make([]int, len(d.symbols))
	copy(out, d.symbols)

	return out
}

// Points returns the forward mapping as (point, symbol) pairs in point order.
// The result is a fresh slice; callers may keep or modify it.
// Complexity: O(2^n).
func (d *Derived) Points() []SymbolPoint {
	out := make([]SymbolPoint, len(d.symbols))
	for i, s := range d.symbols {
		out[i] = SymbolPoint{Point: d.base.pointAt(i), Symbol: s}
	}

	return out
}

// SymbolOf returns the symbol attached to point index i.
// Errors: ErrSymbolRange for i outside [0, Len()).
// Complexity: O(1).
func (d *Derived) SymbolOf(i int) (int, error) {
	if i < 0 || i >= len(d.symbols) {
		return 0, fmt.Errorf("SymbolOf(%d) on %s: %w", i, d.name, ErrSymbolRange)
	}

	return d.symbols[i], nil
}

// PointOf returns the point labeled with symbol s.
// Errors: ErrSymbolRange when no point carries s.
// Complexity: O(2^n).
func (d *Derived) PointOf(s int) (complex128, error) {
	for i, v := range d.symbols {
		if v == s {
			return d.base.pointAt(i), nil
		}
	}

	return 0, fmt.Errorf("PointOf(%d) on %s: %w", s, d.name, ErrSymbolRange)
}

// String returns the family-qualified name.
func (d *Derived) String() string { return d.name }
