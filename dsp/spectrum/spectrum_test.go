package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-mir/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	got := Magnitude([]complex128{3 + 4i, -1, 0, 1i})
	testutil.RequireSliceNearlyEqual(t, got, []float64{5, 1, 0, 1}, 1e-12)
	assert.Nil(t, Magnitude(nil))
}

func TestHann(t *testing.T) {
	w := Hann(4)
	testutil.RequireSliceNearlyEqual(t, w, []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestFrameMagnitudeBinCentredSine(t *testing.T) {
	const (
		sampleRate = 44100.0
		size       = 1024
		bin        = 40
	)
	freq := float64(bin) * sampleRate / size
	frame := testutil.DeterministicSine(freq, sampleRate, 1, size)

	mag, err := FrameMagnitude(frame)
	require.NoError(t, err)
	require.Len(t, mag, size/2+1)

	assert.Equal(t, bin, testutil.ArgMax(mag))
	// Hann coherent gain 0.5 times half the frame length for a real sine.
	assert.InDelta(t, size/4, mag[bin], 1e-6)
	assert.InDelta(t, size/8, mag[bin-1], 1e-6)
	assert.InDelta(t, freq, BinFrequency(bin, len(mag), sampleRate), 1e-9)
}

func TestFrameMagnitudeZeroPads(t *testing.T) {
	mag, err := FrameMagnitude(testutil.DeterministicSine(100, 8000, 1, 1000))
	require.NoError(t, err)
	assert.Len(t, mag, 513)
}

func TestFrameMagnitudeEmpty(t *testing.T) {
	_, err := FrameMagnitude(nil)
	require.Error(t, err)
}

func TestToDB(t *testing.T) {
	got := ToDB([]float64{1, 10, 0})
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 20, got[1], 1e-12)
	assert.True(t, math.IsInf(got[2], -1))
}

func TestBinFrequency(t *testing.T) {
	assert.Equal(t, 0.0, BinFrequency(3, 1, 48000))
	assert.Equal(t, 24000.0, BinFrequency(512, 513, 48000))
}
