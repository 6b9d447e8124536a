package iapws

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IF97 Table 15
func TestVaporPropertiesTp(t *testing.T) {
	cases := []struct {
		T, p              float64
		v, h, u, s, cp, w float64
	}{
		{300, 0.0035e6, 0.394913866e2, 0.254991145e7, 0.241169160e7, 0.852238967e4, 0.191300162e4, 0.427920172e3},
		{700, 0.0035e6, 0.923015898e2, 0.333568375e7, 0.301262819e7, 0.101749996e5, 0.208141274e4, 0.644289068e3},
		{700, 30e6, 0.542946619e-2, 0.263149474e7, 0.246861076e7, 0.517540298e4, 0.103505092e5, 0.480386523e3},
	}

	var r VaporRegion
	for _, c := range cases {
		st, err := r.PropertiesTp(c.T, c.p)
		require.NoError(t, err)

		assert.Equal(t, PhaseVapor, st.Phase)
		assert.InEpsilon(t, c.v, st.V, 1e-8, "v")
		assert.InEpsilon(t, c.h, st.H, 1e-8, "h")
		assert.InEpsilon(t, c.u, st.U, 1e-8, "u")
		assert.InEpsilon(t, c.s, st.S, 1e-8, "s")
		assert.InEpsilon(t, c.cp, st.Cp, 1e-8, "cp")
		assert.InEpsilon(t, c.w, st.W, 1e-8, "w")
		assert.Less(t, st.Cv, st.Cp)
		assert.Greater(t, st.Cv, 0.0)
	}
}

func TestVaporPropertiesCelsius(t *testing.T) {
	var r VaporRegion

	st, err := r.PropertiesCelsius(300, 1e6)
	require.NoError(t, err)
	assert.InDelta(t, 3051.7e3, st.H, 100)

	// 300 degree C, 0.1 MPa
	st, err = r.PropertiesCelsius(300, 0.1e6)
	require.NoError(t, err)
	assert.InDelta(t, 3074.5e3, st.H, 100)
}

// IF97 Tables 24 and 29
func TestVaporBackward(t *testing.T) {
	var r VaporRegion

	t.Run("T(p,h)", func(t *testing.T) {
		cases := []struct {
			p, h, want float64
			sub        Subregion
		}{
			{0.001e6, 3000e3, 0.534433241e3, Subregion2a},
			{3e6, 3000e3, 0.575373370e3, Subregion2a},
			{3e6, 4000e3, 0.101077577e4, Subregion2a},
			{5e6, 3500e3, 0.801299102e3, Subregion2b},
			{5e6, 4000e3, 0.101531583e4, Subregion2b},
			{25e6, 3500e3, 0.875279054e3, Subregion2b},
			{40e6, 2700e3, 0.743056411e3, Subregion2c},
			{60e6, 2700e3, 0.791137067e3, Subregion2c},
			{60e6, 3200e3, 0.882756860e3, Subregion2c},
		}
		for _, c := range cases {
			assert.Equal(t, c.sub, SubregionPH(c.p, c.h), "p = %g, h = %g", c.p, c.h)
			T, err := r.TemperaturePH(c.p, c.h)
			require.NoError(t, err)
			assert.InDelta(t, c.want, T, 1e-5, "p = %g, h = %g", c.p, c.h)
		}
	})

	t.Run("T(p,s)", func(t *testing.T) {
		cases := []struct {
			p, s, want float64
			sub        Subregion
		}{
			{0.1e6, 7.5e3, 0.399517097e3, Subregion2a},
			{0.1e6, 8e3, 0.514127081e3, Subregion2a},
			{2.5e6, 8e3, 0.103984917e4, Subregion2a},
			{8e6, 6e3, 0.600484040e3, Subregion2b},
			{8e6, 7.5e3, 0.106495556e4, Subregion2b},
			{90e6, 6e3, 0.103801126e4, Subregion2b},
			{20e6, 5.75e3, 0.697992849e3, Subregion2c},
			{80e6, 5.25e3, 0.854011484e3, Subregion2c},
			{80e6, 5.75e3, 0.949017998e3, Subregion2c},
		}
		for _, c := range cases {
			assert.Equal(t, c.sub, SubregionPS(c.p, c.s), "p = %g, s = %g", c.p, c.s)
			T, err := r.TemperaturePS(c.p, c.s)
			require.NoError(t, err)
			assert.InDelta(t, c.want, T, 1e-5, "p = %g, s = %g", c.p, c.s)
		}
	})
}

func TestB2bc(t *testing.T) {
	assert.InEpsilon(t, 100e6, B2bcPressure(0.3516004323e7), 1e-9)

	h, err := B2bcEnthalpy(100e6)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.3516004323e7, h, 1e-9)

	for _, p := range []float64{5e6, 20e6, 60e6} {
		h, err := B2bcEnthalpy(p)
		require.NoError(t, err)
		assert.InEpsilon(t, p, B2bcPressure(h), 1e-9)
	}

	_, err = B2bcEnthalpy(1e6)
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestSubregionThresholds(t *testing.T) {
	assert.Equal(t, Subregion2a, SubregionPH(4e6, 3000e3))
	assert.Equal(t, Subregion2a, SubregionPS(4e6, 5000))
	assert.Equal(t, Subregion2b, SubregionPS(4.1e6, 5851))
	assert.Equal(t, Subregion2c, SubregionPS(4.1e6, 5850))

	h, err := B2bcEnthalpy(50e6)
	require.NoError(t, err)
	assert.Equal(t, Subregion2b, SubregionPH(50e6, h+1e3))
	assert.Equal(t, Subregion2c, SubregionPH(50e6, h-1e3))

	assert.Equal(t, "2a", Subregion2a.String())
	assert.Equal(t, "2c", Subregion2c.String())
	assert.Equal(t, "unknown", Subregion(3).String())
	assert.Equal(t, "unknown", Subregion(-1).String())
}

func TestVaporBounds(t *testing.T) {
	var r VaporRegion

	lower, upper, err := r.Bounds(1e6)
	require.NoError(t, err)
	assert.InDelta(t, 453.035632, lower, 1e-6)
	assert.Equal(t, MaxTemperature, upper)

	lower, _, err = r.Bounds(30e6)
	require.NoError(t, err)
	assert.InDelta(t, 698.15, lower, 0.01)

	lower, _, err = r.Bounds(100)
	require.NoError(t, err)
	assert.Equal(t, MinTemperature, lower)

	_, _, err = r.Bounds(0)
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestVaporContains(t *testing.T) {
	var r VaporRegion

	assert.True(t, r.Contains(1e6, 3000e3, Enthalpy))
	assert.False(t, r.Contains(1e6, 2000e3, Enthalpy))
	assert.False(t, r.Contains(1e6, 5000e3, Enthalpy))
	assert.True(t, r.Contains(1e6, 7e3, Entropy))
	assert.False(t, r.Contains(1e6, 5e3, Entropy))
	assert.False(t, r.Contains(30e6, 1800e3, Enthalpy))
}

func TestVaporPropertiesPH(t *testing.T) {
	var r VaporRegion

	st, err := r.PropertiesPH(5e6, 3500e3)
	require.NoError(t, err)
	assert.InDelta(t, 801.299102, st.T, 1e-5)
	assert.Equal(t, PhaseVapor, st.Phase)

	_, err = r.PropertiesPH(1e6, 500e3)
	assert.ErrorIs(t, err, ErrRegionMismatch)
}

func TestVaporPropertiesPS(t *testing.T) {
	var r VaporRegion

	st, err := r.PropertiesPS(20e6, 5.75e3)
	require.NoError(t, err)
	assert.InDelta(t, 697.992849, st.T, 1e-5)

	_, err = r.PropertiesPS(1e6, 1e3)
	assert.ErrorIs(t, err, ErrRegionMismatch)
}

func TestVaporOutOfRange(t *testing.T) {
	var r VaporRegion

	_, err := r.PropertiesTp(1100, 1e6)
	assert.ErrorIs(t, err, ErrInputRange)

	_, err = r.PropertiesTp(500, -1)
	assert.ErrorIs(t, err, ErrInputRange)

	_, err = r.TemperaturePS(0, 7e3)
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestVaporBackwardRejectsNaN(t *testing.T) {
	var r VaporRegion

	for _, p := range []float64{1e6, 10e6, 50e6} {
		T, err := r.TemperaturePH(p, math.NaN())
		assert.ErrorIs(t, err, ErrInputRange, "p = %g", p)
		assert.Zero(t, T)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "h", re.Quantity)

		_, err = r.TemperaturePS(p, math.NaN())
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "s", re.Quantity)
	}
}
