package naming_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graymap/bitperm"
	"github.com/katalvlaran/graymap/naming"
	"github.com/katalvlaran/graymap/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStructural_HistoricalNames locks the names used by the existing catalog.
func TestStructural_HistoricalNames(t *testing.T) {
	cases := []struct {
		mask int
		perm bitperm.Perm
		want string
	}{
		{0, bitperm.Perm{0}, "0x0"},
		{1, bitperm.Perm{0}, "0x1"},
		{0, bitperm.Perm{0, 1}, "0x0_0_1"},
		{3, bitperm.Perm{0, 1}, "0x3_0_1"},
		{2, bitperm.Perm{1, 0}, "0x2_1_0"},
		{5, bitperm.Perm{2, 0, 1}, "0x5_2_0_1"},
		{0x2f, bitperm.Perm{5, 4, 3, 2, 1, 0}, "0x2f_5_4_3_2_1_0"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			tr := symmetry.Transform{Mask: tc.mask, Perm: tc.perm}
			assert.Equal(t, tc.want, naming.Structural(tr))
			assert.Equal(t, "fam_"+tc.want, naming.Full("fam", tr))
		})
	}
}

// TestParse_RoundTrip checks Parse(Structural(t)) == t for every n ≤ 5.
func TestParse_RoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		all, err := symmetry.Enumerate(n)
		require.NoError(t, err)
		for _, tr := range all {
			got, err := naming.Parse(naming.Structural(tr))
			require.NoError(t, err, "%v", tr)
			assert.True(t, got.Equal(tr), "%v != %v", got, tr)
		}
	}
}

// TestParse_BPSKLongForm accepts the explicit one-bit permutation.
func TestParse_BPSKLongForm(t *testing.T) {
	got, err := naming.Parse("0x1_0")
	require.NoError(t, err)
	assert.True(t, got.Equal(symmetry.Transform{Mask: 1, Perm: bitperm.Perm{0}}))

	got, err = naming.Parse("0xA_1_0_2_3")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Mask)
}

// TestParse_Malformed rejects everything that is not a structural name.
func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{
		"", "psk_4", "0x", "0x_0_1", "1_0_1", "0xg_0_1", "0x1_0_", "0x1__0",
		"0x1_0_0", "0x1_0_2", "0x4_0_1", "0x1_+1_0", "0x1_-1_0", "0x-1_0_1",
		"0xffffffffffffffffffff_0_1", "0x1_0_1_2_3_4_5_6_7_8",
	} {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			_, err := naming.Parse(s)
			assert.ErrorIs(t, err, naming.ErrMalformedName)
		})
	}
}

// TestIndex_HistoricalNumbering checks psk_4_0..7 against the catalog.
func TestIndex_HistoricalNumbering(t *testing.T) {
	want := []string{
		"0x0_0_1", "0x1_0_1", "0x2_0_1", "0x3_0_1",
		"0x0_1_0", "0x1_1_0", "0x2_1_0", "0x3_1_0",
	}
	for i, name := range want {
		tr, err := naming.TransformAt(2, i)
		require.NoError(t, err)
		assert.Equal(t, name, naming.Structural(tr))

		parsed, err := naming.Parse(name)
		require.NoError(t, err)
		idx, err := naming.Index(parsed)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

// TestIndex_DenseAndInverse checks Index and TransformAt agree with Enumerate.
func TestIndex_DenseAndInverse(t *testing.T) {
	for n := 1; n <= 5; n++ {
		all, err := symmetry.Enumerate(n)
		require.NoError(t, err)
		require.Equal(t, naming.Count(n), len(all))
		for i, tr := range all {
			idx, err := naming.Index(tr)
			require.NoError(t, err)
			assert.Equal(t, i, idx)
			back, err := naming.TransformAt(n, i)
			require.NoError(t, err)
			assert.True(t, back.Equal(tr))
		}
	}
}

// TestTransformAt_Errors covers bad widths and indices.
func TestTransformAt_Errors(t *testing.T) {
	_, err := naming.TransformAt(2, 8)
	assert.ErrorIs(t, err, naming.ErrIndexOutOfRange)
	_, err = naming.TransformAt(2, -1)
	assert.ErrorIs(t, err, naming.ErrIndexOutOfRange)
	_, err = naming.TransformAt(0, 0)
	assert.ErrorIs(t, err, bitperm.ErrInvalidOrder)
	assert.Equal(t, 0, naming.Count(9))
	assert.Equal(t, 10321920, naming.Count(8))
}

// TestLegacyAlias round-trips sequential aliases.
func TestLegacyAlias(t *testing.T) {
	assert.Equal(t, "psk_4_7", naming.LegacyAlias("psk_4", 7))
	i, err := naming.ParseLegacy("psk_4", "psk_4_7")
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	for _, s := range []string{"psk_4", "psk_4_", "psk_4_0x1_0_1", "psk_2_1", "psk_4_-1"} {
		_, err := naming.ParseLegacy("psk_4", s)
		assert.ErrorIs(t, err, naming.ErrMalformedName, s)
	}
}

// TestResolve stamps canonical and non-canonical identities.
func TestResolve(t *testing.T) {
	id, err := naming.Resolve("psk_4", symmetry.IdentityTransform(2), true)
	require.NoError(t, err)
	assert.Equal(t, 0, id.Index)
	assert.Equal(t, "0x0_0_1", id.Structural)
	assert.Equal(t, "psk_4_0x0_0_1", id.Name)
	assert.Equal(t, []string{"psk_4", "psk_4_0"}, id.Aliases)

	id, err = naming.Resolve("psk_4", symmetry.Transform{Mask: 1, Perm: bitperm.Perm{1, 0}}, true)
	require.NoError(t, err)
	assert.Equal(t, 5, id.Index)
	assert.Equal(t, []string{"psk_4_5"}, id.Aliases)

	id, err = naming.Resolve("psk_4", symmetry.Transform{Mask: 1, Perm: bitperm.Perm{1, 0}}, false)
	require.NoError(t, err)
	assert.Empty(t, id.Aliases)

	_, err = naming.Resolve("psk_4", symmetry.Transform{Mask: 9, Perm: bitperm.Perm{1, 0}}, true)
	assert.ErrorIs(t, err, symmetry.ErrInvalidTransform)
}
