package registry_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/graymap/constellation"
	"github.com/stretchr/testify/require"
)

// grayBase returns a 2^n-point PSK-like base labeled with the reflected
// binary Gray code, so neighbouring points differ in exactly one bit.
func grayBase(t testing.TB, n int) *constellation.Base {
	t.Helper()
	size := 1 << uint(n)
	points := make([]complex128, size)
	symbols := make([]int, size)
	for i := range points {
		points[i] = cmplx.Rect(1, 2*math.Pi*float64(i)/float64(size))
		symbols[i] = i ^ (i >> 1)
	}
	b, err := constellation.NewBase(fmt.Sprintf("psk_%d", size), points, symbols,
		constellation.Meta{RotationalSymmetry: size, Dimensionality: 1, Sectors: size})
	require.NoError(t, err)

	return b
}
