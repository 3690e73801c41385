package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graymap/bitperm"
	"github.com/katalvlaran/graymap/constellation"
	"github.com/katalvlaran/graymap/symmetry"
)

const (
	maskPrefix = "0x"
	sep        = "_"
)

// Count returns the number of variants for width n (2^n·n!), or 0 when n
// is not an accepted bit width.
// Complexity: O(n).
func Count(n int) int {
	if bitperm.CheckOrder(n) != nil {
		return 0
	}

	return (1 << uint(n)) * bitperm.Factorial(n)
}

// Structural renders t as "0xN_x0_..._xM". t must be valid.
// Complexity: O(n).
func Structural(t symmetry.Transform) string {
	var sb strings.Builder
	sb.WriteString(maskPrefix)
	sb.WriteString(strconv.FormatInt(int64(t.Mask), 16))
	if t.BitWidth() == 1 {
		return sb.String()
	}
	for _, v := range t.Perm {
		sb.WriteString(sep)
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Full returns "<family>_<structural>".
// Complexity: O(n + len(family)).
func Full(family string, t symmetry.Transform) string {
	return family + sep + Structural(t)
}

// Parse recovers the transform from a structural name. Both "0x1" and
// "0x1_0" are accepted for one-bit symbols.
//
// Contract:
//   - Parse(Structural(t)) equals t for every valid t.
//   - Mask digits may be any hex case; positions are plain decimals (no sign).
//   - The result passes symmetry.Transform.Validate.
//
// Errors:
//   - ErrMalformedName, wrapping the parse or validation cause when there is one.
//
// Complexity: O(len(s)).
func Parse(s string) (symmetry.Transform, error) {
	rest, ok := strings.CutPrefix(s, maskPrefix)
	if !ok {
		return symmetry.Transform{}, fmt.Errorf("Parse(%q): missing %q prefix: %w", s, maskPrefix, ErrMalformedName)
	}
	parts := strings.Split(rest, sep)
	if !isHex(parts[0]) {
		return symmetry.Transform{}, fmt.Errorf("Parse(%q): bad mask: %w", s, ErrMalformedName)
	}
	mask, err := strconv.ParseInt(parts[0], 16, 64)
	if err != nil {
		return symmetry.Transform{}, fmt.Errorf("Parse(%q): %w: %w", s, ErrMalformedName, err)
	}

	perm := bitperm.Perm{0}
	if len(parts) > 1 {
		perm = make(bitperm.Perm, len(parts)-1)
		for i, p := range parts[1:] {
			if !isDecimal(p) {
				return symmetry.Transform{}, fmt.Errorf("Parse(%q): bad position %q: %w", s, p, ErrMalformedName)
			}
			perm[i], err = strconv.Atoi(p)
			if err != nil {
				return symmetry.Transform{}, fmt.Errorf("Parse(%q): %w: %w", s, ErrMalformedName, err)
			}
		}
	}
	if mask > int64(1)<<uint(bitperm.MaxBitWidth) {
		return symmetry.Transform{}, fmt.Errorf("Parse(%q): mask too large: %w", s, ErrMalformedName)
	}
	t, err := symmetry.New(int(mask), perm)
	if err != nil {
		return symmetry.Transform{}, fmt.Errorf("Parse(%q): %w: %w", s, ErrMalformedName, err)
	}

	return t, nil
}

// SplitFull strips "<family>_" from s. ok is false when the prefix is absent.
// Complexity: O(len(family)).
func SplitFull(family, s string) (structural string, ok bool) {
	return strings.CutPrefix(s, family+sep)
}

// Index returns the variant index of t: Rank(t.Perm)·2^n + t.Mask.
// It is dense over [0, Count(n)) and agrees with symmetry.Enumerate order.
//
// Errors:
//   - symmetry.ErrInvalidTransform when t fails Validate.
//
// Complexity: O(n²).
func Index(t symmetry.Transform) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("Index: %w", err)
	}
	r, err := bitperm.Rank(t.Perm)
	if err != nil {
		return 0, fmt.Errorf("Index: %w", err)
	}

	return r<<uint(t.BitWidth()) + t.Mask, nil
}

// TransformAt is the inverse of Index for width n:
// Index(TransformAt(n, i)) == i for 0 ≤ i < Count(n).
//
// Errors:
//   - bitperm.ErrInvalidOrder: n outside [MinBitWidth, MaxBitWidth].
//   - ErrIndexOutOfRange: i outside [0, Count(n)).
//
// Complexity: O(n²).
func TransformAt(n, i int) (symmetry.Transform, error) {
	if err := bitperm.CheckOrder(n); err != nil {
		return symmetry.Transform{}, fmt.Errorf("TransformAt: %w", err)
	}
	if i < 0 || i >= Count(n) {
		return symmetry.Transform{}, fmt.Errorf("TransformAt(%d, %d): want [0,%d): %w", n, i, Count(n), ErrIndexOutOfRange)
	}
	size := 1 << uint(n)
	perm, err := bitperm.Unrank(n, i/size)
	if err != nil {
		return symmetry.Transform{}, fmt.Errorf("TransformAt: %w", err)
	}

	return symmetry.Transform{Mask: i % size, Perm: perm}, nil
}

// LegacyAlias returns "<family>_<index>".
// Complexity: O(len(family)).
func LegacyAlias(family string, index int) string {
	return family + sep + strconv.Itoa(index)
}

// ParseLegacy extracts the index from a "<family>_<index>" alias. The index
// is not range-checked; the registry does that on lookup.
// Complexity: O(len(s)).
func ParseLegacy(family, s string) (int, error) {
	rest, ok := SplitFull(family, s)
	if !ok || !isDecimal(rest) {
		return 0, fmt.Errorf("ParseLegacy(%q): %w", s, ErrMalformedName)
	}
	i, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("ParseLegacy(%q): %w: %w", s, ErrMalformedName, err)
	}

	return i, nil
}

// Resolve computes the full identity of t inside family. The canonical
// transform additionally receives the bare family alias; every transform
// receives its legacy alias when legacy is true.
//
// Alias order is stable: bare family first (canonical only), then legacy.
//
// Errors:
//   - symmetry.ErrInvalidTransform when t fails Validate.
//
// Complexity: O(n² + len(family)).
func Resolve(family string, t symmetry.Transform, legacy bool) (constellation.Identity, error) {
	idx, err := Index(t)
	if err != nil {
		return constellation.Identity{}, fmt.Errorf("Resolve: %w", err)
	}
	id := constellation.Identity{
		Index:      idx,
		Structural: Structural(t),
		Name:       Full(family, t),
	}
	if t.IsIdentity() {
		id.Aliases = append(id.Aliases, family)
	}
	if legacy {
		id.Aliases = append(id.Aliases, LegacyAlias(family, idx))
	}

	return id, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
