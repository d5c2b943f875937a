package lhs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// assertStratified checks that every column of h, when sorted, has exactly
// one value in each of the n equal-width intervals of [0,1).
func assertStratified(t *testing.T, h *mat.Dense) {
	t.Helper()

	n, d := h.Dims()
	width := 1.0 / float64(n)

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, h)
		sort.Float64s(col)

		for i, v := range col {
			lo := float64(i) * width

			assert.GreaterOrEqual(t, v, lo, "column %d, stratum %d", j, i)
			assert.Less(t, v, lo+width, "column %d, stratum %d", j, i)
		}
	}
}

func TestStratifiedClassic(t *testing.T) {
	tests := []struct {
		name     string
		nDim     int
		nSamples int
	}{
		{"single point", 1, 1},
		{"two dims five samples", 2, 5},
		{"three dims twenty samples", 3, 20},
		{"many dims few samples", 7, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := stratified(tc.nDim, tc.nSamples, TypeClassic, NewRNG(1))
			require.NoError(t, err)

			r, c := h.Dims()
			assert.Equal(t, tc.nSamples, r)
			assert.Equal(t, tc.nDim, c)

			assertStratified(t, h)
		})
	}
}

func TestStratifiedCenteredMidpoints(t *testing.T) {
	const (
		nDim     = 2
		nSamples = 5
	)

	h, err := stratified(nDim, nSamples, TypeCentered, NewRNG(1))
	require.NoError(t, err)

	// Midpoints are exact, independent of the random source.
	width := 1.0 / float64(nSamples)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nDim; j++ {
			assert.Equal(t, (float64(i)+0.5)*width, h.At(i, j))
		}
	}
}

func TestStratifiedUnknownType(t *testing.T) {
	h, err := stratified(2, 5, Type("bogus"), NewRNG(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Nil(t, h)
}

func TestSamplePreservesStratification(t *testing.T) {
	for _, typ := range []Type{TypeClassic, TypeCentered} {
		t.Run(string(typ), func(t *testing.T) {
			h, err := sample(4, 10, typ, NewRNG(99))
			require.NoError(t, err)

			assertStratified(t, h)
		})
	}
}

func TestSampleReproducible(t *testing.T) {
	a, err := sample(3, 12, TypeClassic, NewRNG(7))
	require.NoError(t, err)

	b, err := sample(3, 12, TypeClassic, NewRNG(7))
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b))
}

func TestPermuteColumnsKeepsValues(t *testing.T) {
	h, err := stratified(3, 8, TypeClassic, NewRNG(5))
	require.NoError(t, err)

	before := mat.DenseCopyOf(h)

	permuteColumns(h, NewRNG(6))

	// Each column must hold the same multiset of values as before.
	n, d := h.Dims()
	orig := make([]float64, n)
	perm := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(orig, j, before)
		mat.Col(perm, j, h)

		sort.Float64s(orig)
		sort.Float64s(perm)

		assert.Equal(t, orig, perm, "column %d", j)
	}
}
