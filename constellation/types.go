package constellation

import (
	"github.com/katalvlaran/graymap/symmetry"
)

// Meta carries the descriptive parameters handed to the downstream
// modulator together with the point list.
type Meta struct {
	// RotationalSymmetry is the order of rotational symmetry of the geometry.
	RotationalSymmetry int
	// Dimensionality is 1 for constellations treated as complex-plane points.
	Dimensionality int
	// Sectors is the number of decision sectors.
	Sectors int
}

// SymbolPoint is one entry of a constellation's forward mapping.
type SymbolPoint struct {
	Point  complex128
	Symbol int
}

// Base is the canonical reference constellation for one modulation order.
// Construct it with NewBase; the zero value is not usable.
type Base struct {
	family  string
	points  []complex128
	symbols []int
	meta    Meta
}

// Derived is a Base relabeled by one symmetry transform, stamped with its
// catalog identity. Build Derived values through NewDerived.
type Derived struct {
	base       *Base
	transform  symmetry.Transform
	symbols    []int
	index      int
	structural string
	name       string
	aliases    []string
}

// Identity is the catalog identity assigned to a derived constellation.
type Identity struct {
	// Index is the dense variant index.
	Index int
	// Structural is the bare "0xN_x0_..._xM" name.
	Structural string
	// Name is the family-qualified structural name ("psk_4_0x1_0_1").
	Name string
	// Aliases are the additional lookup names (legacy sequential, bare family).
	Aliases []string
}
