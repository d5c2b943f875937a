package space

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Space is an immutable collection of dimensions together with the transforms
// between the normalized unit cube and domain values. Because no state is
// mutated after construction, a Space is safe for concurrent use.
type Space struct {
	dims []Dimension
}

// New builds a Space from the given dimensions. Every dimension is validated
// up front; an invalid one fails construction with its index in the error.
func New(dims ...Dimension) (*Space, error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}

	for i, d := range dims {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	// Copy so later mutation of the caller's slice cannot reach the Space.
	s := &Space{dims: make([]Dimension, len(dims))}
	copy(s.dims, dims)

	return s, nil
}

// NDims returns the number of dimensions.
func (s *Space) NDims() int { return len(s.dims) }

// HasCategorical reports whether any dimension is categorical.
func (s *Space) HasCategorical() bool {
	for _, d := range s.dims {
		if d.IsCategorical() {
			return true
		}
	}
	return false
}

// FromUnit maps an n×d unit-cube layout to domain values, row by row. Row i
// of the result corresponds to row i of units.
func (s *Space) FromUnit(units mat.Matrix) ([][]Value, error) {
	n, d := units.Dims()
	if d != len(s.dims) {
		return nil, fmt.Errorf("%w: layout has %d columns, space has %d dimensions",
			ErrDimensionMismatch, d, len(s.dims))
	}

	rows := make([][]Value, n)
	for i := 0; i < n; i++ {
		row := make([]Value, d)
		for j, dim := range s.dims {
			row[j] = dim.FromUnit(units.At(i, j))
		}
		rows[i] = row
	}

	return rows, nil
}

// Scoring re-encodes a domain layout as a numeric matrix for distance and
// correlation computations. Numeric columns pass through unchanged;
// categorical columns are replaced by label indices. Row identity is
// preserved.
func (s *Space) Scoring(domain [][]Value) (*mat.Dense, error) {
	d := len(s.dims)
	out := mat.NewDense(len(domain), d, nil)

	for i, row := range domain {
		if len(row) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, space has %d dimensions",
				ErrDimensionMismatch, i, len(row), d)
		}

		for j, dim := range s.dims {
			f, err := dim.ScoringValue(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d, dimension %d: %w", i, j, err)
			}
			out.Set(i, j, f)
		}
	}

	return out, nil
}
