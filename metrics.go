package lhs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//////
// Criterion scoring.
//////

// scoreFunc computes the scalar quality of a candidate scoring layout
// (rows are sample points, columns are numerically-encoded dimensions).
type scoreFunc func(x *mat.Dense) float64

// betterFunc reports whether a candidate score strictly improves on the
// running best. Each criterion carries its own comparison direction; ties
// never replace the incumbent, which keeps results deterministic for a
// deterministic random sequence.
type betterFunc func(candidate, best float64) bool

// criterionScore resolves a criterion to its scoring function and
// improvement test. Unknown criteria fail here, before any loop work.
func criterionScore(c Criterion) (scoreFunc, betterFunc, error) {
	switch c {
	case CriterionCorrelation:
		// Lower is better.
		return maxAbsCorrelation, func(candidate, best float64) bool { return candidate < best }, nil
	case CriterionMaximin:
		// Higher is better.
		return minPairwiseDistance, func(candidate, best float64) bool { return candidate > best }, nil
	case CriterionRatio:
		// Lower is better.
		return distanceRatio, func(candidate, best float64) bool { return candidate < best }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, c)
	}
}

// maxAbsCorrelation returns the maximum absolute off-diagonal entry of the
// correlation matrix across dimension columns. Zero for a single dimension.
func maxAbsCorrelation(x *mat.Dense) float64 {
	_, d := x.Dims()

	corr := mat.NewSymDense(d, nil)
	stat.CorrelationMatrix(corr, x, nil)

	maxAbs := 0.0
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if a := math.Abs(corr.At(i, j)); a > maxAbs {
				maxAbs = a
			}
		}
	}

	return maxAbs
}

// minPairwiseDistance returns the smallest Euclidean distance between any
// two rows of x.
func minPairwiseDistance(x *mat.Dense) float64 {
	lo, _ := distanceExtremes(x)
	return lo
}

// distanceRatio returns max pairwise distance / min pairwise distance.
func distanceRatio(x *mat.Dense) float64 {
	lo, hi := distanceExtremes(x)
	return hi / lo
}

// distanceExtremes scans all row pairs of x and returns the minimum and
// maximum Euclidean distances.
func distanceExtremes(x *mat.Dense) (lo, hi float64) {
	n, _ := x.Dims()

	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(x.RawRowView(i), x.RawRowView(j), 2)

			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
	}

	return lo, hi
}
