package chord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointValidation(t *testing.T) {
	for _, lat := range []float64{90.0001, -90.0001, 91, -91, 180, math.NaN(), math.Inf(1)} {
		_, err := NewPoint(lat, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidLatitude, "lat=%v", lat)
	}
	for _, lon := range []float64{360.0001, 361, 1e9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewPoint(0, lon, 0)
		assert.ErrorIs(t, err, ErrInvalidLongitude, "lon=%v", lon)
	}

	p, err := NewPoint(90, 0, -430.5)
	require.NoError(t, err)
	assert.Equal(t, 90.0, p.Lat())
	assert.Equal(t, -430.5, p.Height())

	_, err = NewPoint(-90, -179.999, 8848)
	assert.NoError(t, err)
}

func TestNewPointLongitudeFolding(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{285, -75},
		{-195, 165},
		{-200, 160},
		{360, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{0, 0},
		{359.5, -0.5},
		{45.25, 45.25},
	} {
		p, err := NewPoint(0, tt.in, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Lon(), "lon=%v", tt.in)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(10°, 20.5°, 30 m)", mustPoint(t, 10, 20.5, 30).String())
}

func TestNewObservationValidation(t *testing.T) {
	for _, c := range []float64{0, -1, -1e9, math.NaN(), math.Inf(1)} {
		_, err := NewObservation(c, 0, 90)
		assert.ErrorIs(t, err, ErrInvalidChord, "chord=%v", c)
	}
	for _, z := range []float64{-0.0001, 180.0001, 360, math.NaN()} {
		_, err := NewObservation(1000, 0, z)
		assert.ErrorIs(t, err, ErrInvalidZenith, "zenith=%v", z)
	}
	for _, az := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewObservation(1000, az, 90)
		assert.Error(t, err, "azimuth=%v", az)
	}

	obs, err := NewObservation(2500.25, 450, 90.5)
	require.NoError(t, err)
	assert.Equal(t, 2500.25, obs.Chord())
	assert.Equal(t, 90.0, obs.Azimuth())
	assert.Equal(t, 90.5, obs.Zenith())

	obs, err = NewObservation(1, -90, 0)
	require.NoError(t, err)
	assert.Equal(t, 270.0, obs.Azimuth())

	obs, err = NewObservation(1, 360, 180)
	require.NoError(t, err)
	assert.Equal(t, 0.0, obs.Azimuth())
	assert.Equal(t, 180.0, obs.Zenith())
}
