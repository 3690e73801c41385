package registry

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graymap/bitperm"
	"github.com/katalvlaran/graymap/constellation"
	"github.com/katalvlaran/graymap/naming"
	"github.com/katalvlaran/graymap/symmetry"
)

// Registry is the frozen catalog of one base constellation's symmetry family.
type Registry struct {
	base     *constellation.Base
	family   string
	bitWidth int
	variants []*constellation.Derived
	byName   map[string]int
}

// MaxBitWidth is the largest width Build accepts. Each variant costs about
// 1.3 KB at n = 6, so n = 7 (645 120 variants) needs roughly 1 GB and n = 8
// would need about 30 GB; bitperm still enumerates n = 8.
const MaxBitWidth = 7

// Build derives, validates, names, and freezes every variant of base for
// bit width n.
//
// Steps:
//  1. Check 1 ≤ n ≤ MaxBitWidth (bitperm.ErrInvalidOrder) and
//     len(base) == 2^n (symmetry.ErrGeometryLengthMismatch).
//  2. Enumerate the 2^n·n! transforms in variant-index order.
//  3. Derive each variant in an errgroup bounded by the worker count; every
//     goroutine writes only its own slot. The first failure cancels the
//     group and no further derivation starts.
//  4. Index all names. A key claimed by two different variants aborts with
//     ErrDuplicateName; a key repeated by one variant is kept once.
//
// Any error aborts the whole build; the first error wins.
//
// Complexity: O(n·2^n · 2^n·n!) time, O(2^n · 2^n·n!) memory.
func Build(base *constellation.Base, n int, opts ...Option) (*Registry, error) {
	if base == nil {
		return nil, registryErrorf(MethodBuild, ErrNilBase, "n=%d", n)
	}
	if err := bitperm.CheckOrder(n); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	if n > MaxBitWidth {
		return nil, registryErrorf(MethodBuild, bitperm.ErrInvalidOrder, "bit width %d exceeds registry limit %d", n, MaxBitWidth)
	}
	if want := 1 << uint(n); base.Len() != want {
		return nil, registryErrorf(MethodBuild, symmetry.ErrGeometryLengthMismatch,
			"%s has %d points, bit width %d needs %d", base.Family(), base.Len(), n, want)
	}
	cfg := newBuildConfig(opts...)
	family := cfg.family
	if family == "" {
		family = base.Family()
	}

	transforms, err := symmetry.Enumerate(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	variants, err := deriveAll(transforms, cfg.workers, func(i int, t symmetry.Transform) (*constellation.Derived, error) {
		id, err := resolveAt(family, i, t, cfg.legacyAliases)
		if err != nil {
			return nil, err
		}

		return constellation.NewDerived(base, t, id)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	byName, err := indexNames(variants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return &Registry{
		base:     base,
		family:   family,
		bitWidth: n,
		variants: variants,
		byName:   byName,
	}, nil
}

// deriveFn builds the variant at position i.
type deriveFn func(i int, t symmetry.Transform) (*constellation.Derived, error)

// deriveAll runs fn for every transform with at most workers goroutines.
// After the first error the context is cancelled: the loop stops scheduling
// and workers already queued return without calling fn.
func deriveAll(transforms []symmetry.Transform, workers int, fn deriveFn) ([]*constellation.Derived, error) {
	variants := make([]*constellation.Derived, len(transforms))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, t := range transforms {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			d, err := fn(i, t)
			if err != nil {
				return err
			}
			variants[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return variants, nil
}

// resolveAt stamps t's identity and checks it lands on position i of the
// enumeration; a mismatch is ErrIndexMismatch.
func resolveAt(family string, i int, t symmetry.Transform, legacy bool) (constellation.Identity, error) {
	id, err := naming.Resolve(family, t, legacy)
	if err != nil {
		return constellation.Identity{}, err
	}
	if id.Index != i {
		return constellation.Identity{}, fmt.Errorf("transform %v resolved to index %d at position %d: %w", t, id.Index, i, ErrIndexMismatch)
	}

	return id, nil
}

// indexNames maps every structural name, full name, and alias to its index.
// A key repeated within one variant (e.g. family "0x0" at n = 1, whose bare
// alias equals its own structural name) is stored once.
func indexNames(variants []*constellation.Derived) (map[string]int, error) {
	byName := make(map[string]int, len(variants)*3+1)
	add := func(key string, idx int) error {
		if prev, ok := byName[key]; ok {
			if prev == idx {
				return nil
			}
			return fmt.Errorf("%q claimed by %d and %d: %w", key, prev, idx, ErrDuplicateName)
		}
		byName[key] = idx

		return nil
	}
	for i, d := range variants {
		if err := add(d.Structural(), i); err != nil {
			return nil, err
		}
		if err := add(d.Name(), i); err != nil {
			return nil, err
		}
		for _, a := range d.Aliases() {
			if err := add(a, i); err != nil {
				return nil, err
			}
		}
	}

	return byName, nil
}

// Base returns the base constellation.
func (r *Registry) Base() *constellation.Base { return r.base }

// Family returns the name prefix used for full names and aliases.
func (r *Registry) Family() string { return r.family }

// BitWidth returns n.
func (r *Registry) BitWidth() int { return r.bitWidth }

// Len returns the number of variants, 2^n·n!.
func (r *Registry) Len() int { return len(r.variants) }

// Canonical returns the (0, identity) variant, index 0.
func (r *Registry) Canonical() *constellation.Derived { return r.variants[0] }

// Variants returns all variants in index order. The slice is a copy; the
// elements are immutable.
func (r *Registry) Variants() []*constellation.Derived {
	out := make([]*constellation.Derived, len(r.variants))
	copy(out, r.variants)

	return out
}

// Names returns every registered lookup key in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for k := range r.byName {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByIndex returns the variant with dense index i.
func (r *Registry) ByIndex(i int) (*constellation.Derived, error) {
	if i < 0 || i >= len(r.variants) {
		return nil, registryErrorf(MethodByIndex, ErrNotFound, "index %d outside [0,%d)", i, len(r.variants))
	}

	return r.variants[i], nil
}

// ByName resolves structural, full, legacy, and bare family names.
// Structural names that are spelled differently but parse to a valid
// transform of this width (e.g. "0xA_..." vs "0xa_...") are also accepted.
func (r *Registry) ByName(s string) (*constellation.Derived, error) {
	if i, ok := r.byName[s]; ok {
		return r.variants[i], nil
	}
	structural, ok := naming.SplitFull(r.family, s)
	if !ok {
		structural = s
	}
	t, err := naming.Parse(structural)
	if err != nil || t.BitWidth() != r.bitWidth {
		return nil, registryErrorf(MethodByName, ErrNotFound, "%q", s)
	}

	return r.lookup(MethodByName, t)
}

// ByTransform returns the variant generated by (mask, perm).
func (r *Registry) ByTransform(mask int, perm []int) (*constellation.Derived, error) {
	t := symmetry.Transform{Mask: mask, Perm: bitperm.Perm(perm)}
	if t.BitWidth() != r.bitWidth {
		return nil, registryErrorf(MethodByTransform, ErrNotFound, "%v has width %d, registry has %d", t, t.BitWidth(), r.bitWidth)
	}

	return r.lookup(MethodByTransform, t)
}

func (r *Registry) lookup(method string, t symmetry.Transform) (*constellation.Derived, error) {
	i, err := naming.Index(t)
	if err != nil {
		return nil, registryErrorf(method, ErrNotFound, "%v", t)
	}

	return r.ByIndex(i)
}
