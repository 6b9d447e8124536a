package main

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsprops/iapws"
)

func TestRunHumid(t *testing.T) {
	hm, err := runHumid(20, 50, 101325)
	require.NoError(t, err)
	assert.InDelta(t, 2339.2, hm.Pvs, 0.1)
	assert.InDelta(t, hm.Pvs/2, hm.Pv, 1e-9)
	assert.InDelta(t, 50.0, hm.RH, 1e-9)
	assert.InDelta(t, 0.007264, hm.X, 1e-6)
	assert.InDelta(t, 9.27, hm.DewPoint, 0.01)

	hm, err = runHumid(20, 100, 101325)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, hm.DewPoint, 1e-6)
}

func TestRunHumidDewPointBelowFreezing(t *testing.T) {
	hm, err := runHumid(20, 10, 101325)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(hm.DewPoint))
	assert.Greater(t, hm.X, 0.0)

	var buf bytes.Buffer
	printHumid(&buf, hm)
	assert.Contains(t, buf.String(), "dew point: below 0 C")
}

func TestRunHumidOutOfRange(t *testing.T) {
	_, err := runHumid(20, 120, 101325)
	assert.ErrorIs(t, err, iapws.ErrInputRange)

	_, err = runHumid(-150, 50, 101325)
	assert.ErrorIs(t, err, iapws.ErrInputRange)

	// 水蒸気圧が全圧以上
	_, err = runHumid(150, 100, 101325)
	assert.ErrorIs(t, err, iapws.ErrInputRange)

	_, err = runHumid(nan(), 50, 101325)
	assert.Error(t, err)
}

func TestRunHumidOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Mode: "humid", P: 101325, TC: 25, RH: 60}
	require.NoError(t, run(context.Background(), cfg, &buf))
	assert.Contains(t, buf.String(), "x:")
	assert.Contains(t, buf.String(), "dew point:")
}
