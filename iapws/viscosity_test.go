package iapws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IAPWS 2008 Table 4, μ2 = 1
func TestDynamicViscosity(t *testing.T) {
	cases := []struct {
		T, rho, want float64 // K, kg/m3, μPa s
	}{
		{298.15, 998, 889.735100},
		{298.15, 1200, 1437.649467},
		{373.15, 1000, 307.883622},
		{433.15, 1, 14.538324},
		{433.15, 1000, 217.685358},
		{873.15, 1, 32.619287},
		{873.15, 100, 35.802262},
		{873.15, 600, 77.430195},
		{1173.15, 1, 44.217245},
		{1173.15, 100, 47.640433},
		{1173.15, 400, 64.154608},
	}
	for _, c := range cases {
		mu, err := DynamicViscosity(c.T, c.rho)
		require.NoError(t, err)
		assert.InEpsilon(t, c.want*1e-6, mu, 1e-7, "T = %g, rho = %g", c.T, c.rho)
	}
}

func TestDynamicViscosityOutOfRange(t *testing.T) {
	_, err := DynamicViscosity(CriticalTemperature, CriticalDensity)
	assert.ErrorIs(t, err, ErrInputRange)

	_, err = DynamicViscosity(1200, 1)
	assert.ErrorIs(t, err, ErrInputRange)

	_, err = DynamicViscosity(300, -1)
	assert.ErrorIs(t, err, ErrInputRange)
}

func TestStateViscosity(t *testing.T) {
	var r LiquidRegion
	st, err := r.PropertiesCelsius(25, 0.101325e6)
	require.NoError(t, err)

	mu, err := st.Viscosity()
	require.NoError(t, err)
	assert.InDelta(t, 890e-6, mu, 2e-6)
}
