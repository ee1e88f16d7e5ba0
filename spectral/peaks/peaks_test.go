package peaks_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-mir/spectral/peaks"
)

// localMaxima is a deterministic stand-in for a real peak finder: it reports
// strict interior local maxima above the threshold, without interpolation.
func localMaxima(array []float64, p peaks.Params) ([]float64, []float64, error) {
	if len(array) < 3 {
		return nil, nil, nil
	}
	scale := p.Range / float64(len(array)-1)

	type peak struct{ pos, amp float64 }
	var found []peak
	for i := 1; i < len(array)-1; i++ {
		pos := float64(i) * scale
		if pos < p.MinPosition || pos > p.MaxPosition {
			continue
		}
		if array[i] > p.Threshold && array[i] > array[i-1] && array[i] > array[i+1] {
			found = append(found, peak{pos: pos, amp: array[i]})
		}
	}

	if p.OrderBy == peaks.OrderAmplitude {
		sort.SliceStable(found, func(a, b int) bool { return found[a].amp > found[b].amp })
	}
	if len(found) > p.MaxPeaks {
		found = found[:p.MaxPeaks]
	}

	positions := make([]float64, len(found))
	amplitudes := make([]float64, len(found))
	for i, pk := range found {
		positions[i] = pk.pos
		amplitudes[i] = pk.amp
	}
	return positions, amplitudes, nil
}

func TestRemap(t *testing.T) {
	cfg := peaks.Config{
		SampleRate:         22050,
		MaxPeaks:           7,
		MinFrequency:       40,
		MaxFrequency:       8000,
		MagnitudeThreshold: -60,
		OrderBy:            "Magnitude",
	}

	got, err := peaks.Remap(cfg)
	require.NoError(t, err)

	assert.Equal(t, peaks.Params{
		Range:       11025,
		MaxPeaks:    7,
		MinPosition: 40,
		MaxPosition: 8000,
		Threshold:   -60,
		OrderBy:     peaks.OrderAmplitude,
	}, got)
}

func TestRemapOrderBy(t *testing.T) {
	tests := []struct {
		in      string
		want    peaks.Order
		wantErr bool
	}{
		{in: "magnitude", want: peaks.OrderAmplitude},
		{in: "MAGNITUDE", want: peaks.OrderAmplitude},
		{in: "frequency", want: peaks.OrderPosition},
		{in: "Frequency", want: peaks.OrderPosition},
		{in: "amplitude", wantErr: true},
		{in: "position", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := peaks.DefaultConfig()
			cfg.OrderBy = tt.in

			got, err := peaks.Remap(cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, peaks.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.OrderBy)
		})
	}
}

func TestRemapValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*peaks.Config)
	}{
		{name: "zero sample rate", mutate: func(c *peaks.Config) { c.SampleRate = 0 }},
		{name: "negative sample rate", mutate: func(c *peaks.Config) { c.SampleRate = -1 }},
		{name: "zero max peaks", mutate: func(c *peaks.Config) { c.MaxPeaks = 0 }},
		{name: "negative min frequency", mutate: func(c *peaks.Config) { c.MinFrequency = -10 }},
		{name: "max below min", mutate: func(c *peaks.Config) {
			c.MinFrequency = 1000
			c.MaxFrequency = 500
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := peaks.DefaultConfig()
			tt.mutate(&cfg)
			_, err := peaks.Remap(cfg)
			require.ErrorIs(t, err, peaks.ErrConfiguration)
		})
	}
}

func TestNewRejectsNilFinder(t *testing.T) {
	_, err := peaks.New(nil, peaks.DefaultConfig())
	require.ErrorIs(t, err, peaks.ErrConfiguration)
}

func TestNewRejectsUnsupportedOrder(t *testing.T) {
	called := false
	finder := peaks.FinderFunc(func([]float64, peaks.Params) ([]float64, []float64, error) {
		called = true
		return nil, nil, nil
	})

	cfg := peaks.DefaultConfig()
	cfg.OrderBy = "loudness"
	ext, err := peaks.New(finder, cfg)

	require.ErrorIs(t, err, peaks.ErrConfiguration)
	assert.Contains(t, err.Error(), `unsupported ordering type "loudness"`)
	assert.Nil(t, ext)
	assert.False(t, called)
}

func TestComputeForwardsUnchanged(t *testing.T) {
	spectrum := []float64{0, 1, 0, 3, 0}
	wantPos := []float64{1.5, 2.5}
	wantAmp := []float64{9, 8}

	var gotArray []float64
	var gotParams peaks.Params
	finder := peaks.FinderFunc(func(array []float64, p peaks.Params) ([]float64, []float64, error) {
		gotArray, gotParams = array, p
		return wantPos, wantAmp, nil
	})

	ext, err := peaks.New(finder, peaks.DefaultConfig())
	require.NoError(t, err)

	freqs, mags, err := ext.Compute(spectrum)
	require.NoError(t, err)

	assert.Equal(t, spectrum, gotArray)
	assert.Equal(t, ext.Params(), gotParams)
	assert.Equal(t, wantPos, freqs)
	assert.Equal(t, wantAmp, mags)
}

func TestComputePropagatesFinderError(t *testing.T) {
	errSearch := errors.New("search failed")
	finder := peaks.FinderFunc(func([]float64, peaks.Params) ([]float64, []float64, error) {
		return nil, nil, errSearch
	})

	ext, err := peaks.New(finder, peaks.DefaultConfig())
	require.NoError(t, err)

	_, _, err = ext.Compute([]float64{1, 2, 1})
	assert.Same(t, errSearch, err)
}

func TestComputeOrdering(t *testing.T) {
	// 5 bins over 0..100 Hz: peaks at 25 Hz (amp 1) and 75 Hz (amp 3).
	spectrum := []float64{0, 1, 0, 3, 0}

	tests := []struct {
		orderBy string
		freqs   []float64
		mags    []float64
	}{
		{orderBy: "frequency", freqs: []float64{25, 75}, mags: []float64{1, 3}},
		{orderBy: "magnitude", freqs: []float64{75, 25}, mags: []float64{3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			cfg := peaks.Config{
				SampleRate:   200,
				MaxPeaks:     10,
				MaxFrequency: 100,
				OrderBy:      tt.orderBy,
			}
			ext, err := peaks.New(peaks.FinderFunc(localMaxima), cfg)
			require.NoError(t, err)

			freqs, mags, err := ext.Compute(spectrum)
			require.NoError(t, err)
			assert.Equal(t, tt.freqs, freqs)
			assert.Equal(t, tt.mags, mags)
		})
	}
}
