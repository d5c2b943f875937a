package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFromUnit(t *testing.T) {
	r := NewReal(2, 4)

	assert.InDelta(t, 2.0, r.FromUnit(0).(float64), 1e-12)
	assert.InDelta(t, 3.0, r.FromUnit(0.5).(float64), 1e-12)
	assert.InDelta(t, 3.5, r.FromUnit(0.75).(float64), 1e-12)
}

func TestRealFromUnitLogUniform(t *testing.T) {
	r := NewReal(1e-4, 1e-1, PriorLogUniform)

	// Equal unit-cube steps cover equal factors of the range.
	assert.InEpsilon(t, 1e-4, r.FromUnit(0).(float64), 1e-9)
	assert.InEpsilon(t, 1e-3, r.FromUnit(1.0/3).(float64), 1e-9)
	assert.InEpsilon(t, 1e-2, r.FromUnit(2.0/3).(float64), 1e-9)
	assert.InEpsilon(t, 1e-1, r.FromUnit(1).(float64), 1e-9)
}

func TestRealValidate(t *testing.T) {
	tests := []struct {
		name    string
		dim     Real
		wantErr error
	}{
		{"valid uniform", NewReal(0, 1), nil},
		{"valid zero-value prior", Real{Low: 0, High: 1}, nil},
		{"valid log-uniform", NewReal(0.001, 10, PriorLogUniform), nil},
		{"inverted bounds", NewReal(1, 0), ErrInvalidBounds},
		{"equal bounds", NewReal(1, 1), ErrInvalidBounds},
		{"nan bound", NewReal(math.NaN(), 1), ErrInvalidBounds},
		{"infinite bound", NewReal(0, math.Inf(1)), ErrInvalidBounds},
		{"log-uniform with zero low", NewReal(0, 1, PriorLogUniform), ErrInvalidPrior},
		{"unknown prior", NewReal(0, 1, Prior("bogus")), ErrInvalidPrior},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dim.Validate()

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestRealScoringValue(t *testing.T) {
	r := NewReal(0, 1)

	f, err := r.ScoringValue(0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	_, err = r.ScoringValue("not a number")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestIntegerFromUnit(t *testing.T) {
	d := NewInteger(1, 10)

	assert.Equal(t, 1, d.FromUnit(0))
	assert.Equal(t, 6, d.FromUnit(0.5)) // 1 + round(4.5)
	assert.Equal(t, 10, d.FromUnit(0.999))
}

func TestIntegerValidate(t *testing.T) {
	assert.NoError(t, NewInteger(1, 2).Validate())
	assert.ErrorIs(t, NewInteger(2, 2).Validate(), ErrInvalidBounds)
	assert.ErrorIs(t, NewInteger(3, 1).Validate(), ErrInvalidBounds)
}

func TestIntegerScoringValue(t *testing.T) {
	d := NewInteger(1, 10)

	f, err := d.ScoringValue(7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, f)

	_, err = d.ScoringValue(7.0)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestCategoricalFromUnit(t *testing.T) {
	d := NewCategorical("a", "b", "c")

	assert.Equal(t, "a", d.FromUnit(0))
	assert.Equal(t, "b", d.FromUnit(0.34))
	assert.Equal(t, "c", d.FromUnit(0.9))

	// u exactly at 1 clamps to the last category.
	assert.Equal(t, "c", d.FromUnit(1))
}

func TestCategoricalValidate(t *testing.T) {
	assert.NoError(t, NewCategorical("only").Validate())
	assert.ErrorIs(t, NewCategorical().Validate(), ErrNoCategories)
}

func TestCategoricalScoringValue(t *testing.T) {
	d := NewCategorical("a", "b", "c")

	for i, c := range []string{"a", "b", "c"} {
		f, err := d.ScoringValue(c)
		require.NoError(t, err)
		assert.Equal(t, float64(i), f)
	}

	_, err := d.ScoringValue("z")
	assert.ErrorIs(t, err, ErrUnknownValue)
}
