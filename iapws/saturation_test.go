package iapws

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IF97 Table 35
func TestSaturationPressure(t *testing.T) {
	cases := []struct {
		T, want float64
	}{
		{300, 0.353658941e4},
		{500, 0.263889776e7},
		{600, 0.123443146e8},
	}
	for _, c := range cases {
		p, err := SaturationPressure(c.T)
		require.NoError(t, err)
		assert.InEpsilon(t, c.want, p, 1e-8, "T = %g", c.T)
	}
}

// IF97 Table 36
func TestSaturationTemperature(t *testing.T) {
	cases := []struct {
		p, want float64
	}{
		{0.1e6, 372.755919},
		{1e6, 453.035632},
		{10e6, 584.149488},
	}
	for _, c := range cases {
		T, err := SaturationTemperature(c.p)
		require.NoError(t, err)
		assert.InDelta(t, c.want, T, 1e-6, "p = %g", c.p)
	}
}

func TestSaturationCurveEndpoints(t *testing.T) {
	p, err := SaturationPressure(MinTemperature)
	require.NoError(t, err)
	assert.InDelta(t, 611.2, p, 0.1)

	T, err := SaturationTemperature(p)
	require.NoError(t, err)
	assert.InDelta(t, MinTemperature, T, 1e-6)

	p, err = SaturationPressure(CriticalTemperature)
	require.NoError(t, err)
	assert.InEpsilon(t, CriticalPressure, p, 1e-5)

	T, err = SaturationTemperature(CriticalPressure)
	require.NoError(t, err)
	assert.InDelta(t, CriticalTemperature, T, 1e-3)

	T, err = SaturationTemperature(p)
	require.NoError(t, err, "p = %g", p)
	assert.InDelta(t, CriticalTemperature, T, 1e-3)
}

func TestSaturationCurveInverse(t *testing.T) {
	for T := 275.0; T < CriticalTemperature; T += 12.5 {
		p, err := SaturationPressure(T)
		require.NoError(t, err)
		back, err := SaturationTemperature(p)
		require.NoError(t, err)
		assert.InDelta(t, T, back, 1e-6, "T = %g", T)
	}
}

func TestSaturationCurveOutOfRange(t *testing.T) {
	t.Run("temperature above critical", func(t *testing.T) {
		_, err := SaturationPressure(700)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInputRange)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "T", re.Quantity)
		assert.Equal(t, 700.0, re.Value)
	})

	t.Run("temperature below triple point", func(t *testing.T) {
		_, err := SaturationPressure(250)
		assert.ErrorIs(t, err, ErrInputRange)
	})

	t.Run("pressure below minimum", func(t *testing.T) {
		_, err := SaturationTemperature(100)
		assert.ErrorIs(t, err, ErrInputRange)
	})

	t.Run("pressure above critical", func(t *testing.T) {
		_, err := SaturationTemperature(30e6)
		assert.ErrorIs(t, err, ErrInputRange)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := SaturationPressure(math.NaN())
		assert.ErrorIs(t, err, ErrInputRange)
		_, err = SaturationTemperature(math.NaN())
		assert.ErrorIs(t, err, ErrInputRange)
	})
}
