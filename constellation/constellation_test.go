package constellation_test

import (
	"testing"

	"github.com/katalvlaran/graymap/bitperm"
	"github.com/katalvlaran/graymap/constellation"
	"github.com/katalvlaran/graymap/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qpskMeta = constellation.Meta{RotationalSymmetry: 2, Dimensionality: 1, Sectors: 2}

// TestNewBase_Errors verifies the validation order and sentinels.
func TestNewBase_Errors(t *testing.T) {
	pts := []complex128{complex(-1, -1), complex(1, -1), complex(-1, 1), complex(1, 1)}
	cases := []struct {
		name    string
		family  string
		points  []complex128
		symbols []int
		meta    constellation.Meta
		err     error
	}{
		{"EmptyFamily", "", pts, []int{0, 1, 2, 3}, qpskMeta, constellation.ErrEmptyFamily},
		{"LengthMismatch", "psk_4", pts, []int{0, 1, 2}, qpskMeta, symmetry.ErrGeometryLengthMismatch},
		{"DuplicateSymbol", "psk_4", pts, []int{0, 1, 1, 3}, qpskMeta, symmetry.ErrNonBijectiveMapping},
		{"ZeroSectors", "psk_4", pts, []int{0, 1, 2, 3}, constellation.Meta{RotationalSymmetry: 2, Dimensionality: 1}, constellation.ErrBadMeta},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := constellation.NewBase(tc.family, tc.points, tc.symbols, tc.meta)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewBase_DeepCopy ensures callers cannot mutate a Base.
func TestNewBase_DeepCopy(t *testing.T) {
	pts := []complex128{-1, 1}
	syms := []int{0, 1}
	b, err := constellation.NewBase("psk_2", pts, syms, constellation.Meta{RotationalSymmetry: 1, Dimensionality: 1, Sectors: 2})
	require.NoError(t, err)

	pts[0], syms[0] = 99, 1
	assert.Equal(t, []complex128{-1, 1}, b.Points())
	assert.Equal(t, []int{0, 1}, b.Symbols())

	out := b.Symbols()
	out[0] = 7
	assert.Equal(t, []int{0, 1}, b.Symbols())
}

// TestBase_BitWidth covers power-of-two and irregular lengths.
func TestBase_BitWidth(t *testing.T) {
	assert.Equal(t, 1, constellation.BPSK().BitWidth())
	assert.Equal(t, 2, constellation.QPSK().BitWidth())

	// The historical 8PSK ordering lists only seven symbols for eight points.
	b, err := constellation.NewBase("psk_8", make([]complex128, 8), []int{0, 1, 3, 2, 6, 7, 5}, qpskMeta)
	assert.ErrorIs(t, err, symmetry.ErrGeometryLengthMismatch)
	assert.Nil(t, b)

	seven, err := constellation.NewBase("psk_7", make([]complex128, 7), []int{0, 1, 2, 3, 4, 5, 6}, qpskMeta)
	require.NoError(t, err)
	assert.Equal(t, -1, seven.BitWidth())
}

// TestPresets locks the historical tables.
func TestPresets(t *testing.T) {
	q := constellation.QPSK()
	assert.Equal(t, constellation.FamilyQPSK, q.Family())
	assert.Equal(t, []complex128{complex(-1, -1), complex(1, -1), complex(-1, 1), complex(1, 1)}, q.Points())
	assert.Equal(t, []int{0, 1, 2, 3}, q.Symbols())
	assert.Equal(t, qpskMeta, q.Meta())

	b := constellation.BPSK()
	assert.Equal(t, constellation.FamilyBPSK, b.Family())
	assert.Equal(t, []complex128{-1, 1}, b.Points())
	assert.Equal(t, constellation.Meta{RotationalSymmetry: 1, Dimensionality: 1, Sectors: 2}, b.Meta())
}

// TestNewDerived_Points checks the QPSK mask=1 variant end to end.
func TestNewDerived_Points(t *testing.T) {
	q := constellation.QPSK()
	tr := symmetry.Transform{Mask: 1, Perm: bitperm.Perm{0, 1}}
	id := constellation.Identity{Index: 1, Structural: "0x1_0_1", Name: "psk_4_0x1_0_1", Aliases: []string{"psk_4_1"}}
	d, err := constellation.NewDerived(q, tr, id)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 3, 2}, d.Symbols())
	assert.Equal(t, []constellation.SymbolPoint{
		{Point: complex(-1, -1), Symbol: 1},
		{Point: complex(1, -1), Symbol: 0},
		{Point: complex(-1, 1), Symbol: 3},
		{Point: complex(1, 1), Symbol: 2},
	}, d.Points())
	assert.Equal(t, 1, d.Index())
	assert.Equal(t, "psk_4_0x1_0_1", d.Name())
	assert.Equal(t, "0x1_0_1", d.Structural())
	assert.Equal(t, []string{"psk_4_1"}, d.Aliases())
	assert.False(t, d.IsCanonical())
	assert.Same(t, q, d.Base())

	s, err := d.SymbolOf(2)
	require.NoError(t, err)
	assert.Equal(t, 3, s)
	p, err := d.PointOf(0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, -1), p)

	_, err = d.SymbolOf(4)
	assert.ErrorIs(t, err, constellation.ErrSymbolRange)
	_, err = d.PointOf(-1)
	assert.ErrorIs(t, err, constellation.ErrSymbolRange)

	// Mutating the returned transform must not leak into d.
	got := d.Transform()
	got.Perm[0] = 1
	assert.True(t, d.Transform().Equal(tr))
}

// TestNewDerived_Errors checks nil base and width mismatch.
func TestNewDerived_Errors(t *testing.T) {
	_, err := constellation.NewDerived(nil, symmetry.IdentityTransform(2), constellation.Identity{})
	assert.ErrorIs(t, err, constellation.ErrNilBase)

	_, err = constellation.NewDerived(constellation.QPSK(), symmetry.IdentityTransform(3), constellation.Identity{})
	assert.ErrorIs(t, err, symmetry.ErrGeometryLengthMismatch)
}
