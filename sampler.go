package lhs

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

//////
// Sampling kernel.
//////

// NewRNG returns a deterministic random number generator for the given seed.
// Pass the result as Config.RandomState for reproducible layouts.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// sample produces one candidate unit-cube layout: a stratified matrix with
// each column independently permuted. All randomness is drawn from rng, so a
// seeded generator yields a reproducible candidate sequence.
func sample(nDim, nSamples int, t Type, rng *rand.Rand) (*mat.Dense, error) {
	h, err := stratified(nDim, nSamples, t, rng)
	if err != nil {
		return nil, err
	}

	permuteColumns(h, rng)

	return h, nil
}

// stratified builds an nSamples×nDim matrix in [0,1) with exactly one value
// per column in each of the nSamples equal-width strata. Stratum i covers
// [i/nSamples, (i+1)/nSamples); row i holds stratum i's value for every
// column, so the pre-permutation layout is sorted per column.
func stratified(nDim, nSamples int, t Type, rng *rand.Rand) (*mat.Dense, error) {
	width := 1.0 / float64(nSamples)
	h := mat.NewDense(nSamples, nDim, nil)

	switch t {
	case TypeCentered:
		// Deterministic: every column gets the stratum midpoints.
		for i := 0; i < nSamples; i++ {
			mid := (float64(i) + 0.5) * width
			for j := 0; j < nDim; j++ {
				h.Set(i, j, mid)
			}
		}
	case TypeClassic:
		// One uniform offset per stratum per column, drawn row-wise from a
		// multi-variate uniform over the unit cube.
		bounds := make([]r1.Interval, nDim)
		for j := range bounds {
			bounds[j] = r1.Interval{Min: 0, Max: 1}
		}

		offsets := distmv.NewUniform(bounds, rng)

		row := make([]float64, nDim)
		for i := 0; i < nSamples; i++ {
			offsets.Rand(row)

			start := float64(i) * width
			for j := 0; j < nDim; j++ {
				h.Set(i, j, start+row[j]*width)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	return h, nil
}

// permuteColumns reorders each column of h by an independent uniformly random
// permutation of the row indices. Per-column stratification is preserved
// while the columns are decorrelated from one another. Deterministic given a
// seeded rng.
func permuteColumns(h *mat.Dense, rng *rand.Rand) {
	n, d := h.Dims()

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, h)

		for i, p := range rng.Perm(n) {
			h.Set(i, j, col[p])
		}
	}
}
