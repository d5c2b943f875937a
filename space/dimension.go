package space

import (
	"errors"
	"fmt"
	"math"
)

//////
// Errors.
//////

var (
	// ErrNoDimensions is returned when a Space is built without dimensions.
	ErrNoDimensions = errors.New("space: at least one dimension is required")

	// ErrInvalidBounds is returned when a dimension's lower bound is not
	// strictly below its upper bound, or a bound is not finite.
	ErrInvalidBounds = errors.New("space: invalid bounds")

	// ErrInvalidPrior is returned for an unknown prior name, or for a
	// log-uniform prior over a non-positive range.
	ErrInvalidPrior = errors.New("space: invalid prior")

	// ErrNoCategories is returned when a categorical dimension has an empty
	// category set.
	ErrNoCategories = errors.New("space: at least one category is required")

	// ErrUnknownValue is returned when a value cannot be encoded for
	// scoring, e.g. a category that is not part of the dimension's set.
	ErrUnknownValue = errors.New("space: value does not belong to dimension")

	// ErrDimensionMismatch is returned when a layout's column count does not
	// match the space's dimensionality.
	ErrDimensionMismatch = errors.New("space: dimension count mismatch")
)

//////
// Types.
//////

// Value is one coordinate of a point in domain units: float64 for Real
// dimensions, int for Integer dimensions, and the category value itself for
// Categorical dimensions.
type Value = any

// Prior controls how a Real dimension distributes unit-cube mass over its
// range.
type Prior string

const (
	// PriorUniform spreads samples linearly between the bounds. This is the
	// default; the zero value of Prior behaves the same.
	PriorUniform Prior = "uniform"

	// PriorLogUniform spreads samples uniformly in log space, which suits
	// parameters that vary over orders of magnitude. Requires Low > 0.
	PriorLogUniform Prior = "log-uniform"
)

// Dimension describes a single axis of the search space. Implementations are
// Real, Integer and Categorical; all are immutable value types.
type Dimension interface {
	// FromUnit maps a unit-cube coordinate in [0,1) to a domain value.
	FromUnit(u float64) Value

	// ScoringValue encodes a domain value as a float64 for distance and
	// correlation computations. Categorical dimensions return the label
	// index of the value within their category set.
	ScoringValue(v Value) (float64, error)

	// Validate reports whether the dimension is well formed. It is called
	// by New for every dimension before any sampling work happens.
	Validate() error

	// IsCategorical reports whether the dimension carries category values
	// rather than numbers.
	IsCategorical() bool
}

//////
// Real.
//////

// Real is a bounded continuous dimension over [Low, High].
type Real struct {
	Low   float64
	High  float64
	Prior Prior
}

// NewReal returns a continuous dimension over [low, high]. An optional prior
// may be given; the default is PriorUniform.
func NewReal(low, high float64, prior ...Prior) Real {
	r := Real{Low: low, High: high, Prior: PriorUniform}
	if len(prior) > 0 {
		r.Prior = prior[0]
	}
	return r
}

// Validate checks bounds and prior.
func (r Real) Validate() error {
	if math.IsNaN(r.Low) || math.IsInf(r.Low, 0) ||
		math.IsNaN(r.High) || math.IsInf(r.High, 0) || r.Low >= r.High {
		return fmt.Errorf("%w: real [%v, %v]", ErrInvalidBounds, r.Low, r.High)
	}

	switch r.Prior {
	case Prior(""), PriorUniform:
		return nil
	case PriorLogUniform:
		if r.Low <= 0 {
			return fmt.Errorf("%w: log-uniform requires positive bounds, got low=%v", ErrInvalidPrior, r.Low)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPrior, r.Prior)
	}
}

// FromUnit maps u in [0,1) onto the bounded range, linearly for the uniform
// prior and exponentially for the log-uniform prior.
func (r Real) FromUnit(u float64) Value {
	if r.Prior == PriorLogUniform {
		lo, hi := math.Log(r.Low), math.Log(r.High)
		return math.Exp(lo + u*(hi-lo))
	}
	return r.Low + u*(r.High-r.Low)
}

// ScoringValue returns the value unchanged; Real coordinates are already
// numeric.
func (r Real) ScoringValue(v Value) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: expected float64, got %T", ErrUnknownValue, v)
	}
	return f, nil
}

// IsCategorical reports false.
func (r Real) IsCategorical() bool { return false }

//////
// Integer.
//////

// Integer is a bounded integer dimension over [Low, High], both inclusive.
type Integer struct {
	Low  int
	High int
}

// NewInteger returns an integer dimension over [low, high].
func NewInteger(low, high int) Integer {
	return Integer{Low: low, High: high}
}

// Validate checks bounds.
func (d Integer) Validate() error {
	if d.Low >= d.High {
		return fmt.Errorf("%w: integer [%d, %d]", ErrInvalidBounds, d.Low, d.High)
	}
	return nil
}

// FromUnit maps u in [0,1) onto the integer range by rounding the affine
// image, so both endpoints are reachable.
func (d Integer) FromUnit(u float64) Value {
	return d.Low + int(math.Round(u*float64(d.High-d.Low)))
}

// ScoringValue converts the integer to float64.
func (d Integer) ScoringValue(v Value) (float64, error) {
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: expected int, got %T", ErrUnknownValue, v)
	}
	return float64(i), nil
}

// IsCategorical reports false.
func (d Integer) IsCategorical() bool { return false }

//////
// Categorical.
//////

// Categorical is a dimension over an explicit, ordered set of category
// values. Category values must be comparable (strings, ints, ...).
type Categorical struct {
	Categories []Value
}

// NewCategorical returns a categorical dimension over the given values.
func NewCategorical(categories ...Value) Categorical {
	return Categorical{Categories: categories}
}

// Validate checks the category set is non-empty.
func (d Categorical) Validate() error {
	if len(d.Categories) == 0 {
		return ErrNoCategories
	}
	return nil
}

// FromUnit maps u in [0,1) to a category by splitting the unit interval into
// len(Categories) equal bins. u exactly at 1 clamps to the last category.
func (d Categorical) FromUnit(u float64) Value {
	k := len(d.Categories)

	i := int(u * float64(k))
	if i >= k {
		i = k - 1
	}

	return d.Categories[i]
}

// ScoringValue returns the label index of v within the category set.
func (d Categorical) ScoringValue(v Value) (float64, error) {
	for i, c := range d.Categories {
		if c == v {
			return float64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: category %v", ErrUnknownValue, v)
}

// IsCategorical reports true.
func (d Categorical) IsCategorical() bool { return true }
