package peaks

import (
	"fmt"

	"github.com/cwbudde/algo-mir/dsp/core"
	"github.com/cwbudde/algo-mir/dsp/spectrum"
)

// Finder searches an array for peaks according to p and returns their
// positions and amplitudes as parallel slices ordered by p.OrderBy.
type Finder interface {
	Find(array []float64, p Params) (positions, amplitudes []float64, err error)
}

// FinderFunc adapts a function to [Finder].
type FinderFunc func(array []float64, p Params) (positions, amplitudes []float64, err error)

// Find calls f(array, p).
func (f FinderFunc) Find(array []float64, p Params) (positions, amplitudes []float64, err error) {
	return f(array, p)
}

// Extractor forwards spectra to a [Finder] with remapped parameters.
// It holds no mutable state and is safe for concurrent use if the finder is.
type Extractor struct {
	finder     Finder
	params     Params
	sampleRate float64
}

// New remaps cfg and returns an Extractor bound to finder.
func New(finder Finder, cfg Config) (*Extractor, error) {
	if finder == nil {
		return nil, fmt.Errorf("%w: nil finder", ErrConfiguration)
	}
	params, err := Remap(cfg)
	if err != nil {
		return nil, err
	}
	return &Extractor{finder: finder, params: params, sampleRate: cfg.SampleRate}, nil
}

// Params returns the parameters passed to the finder.
func (e *Extractor) Params() Params { return e.params }

// Compute returns the peak frequencies (Hz) and magnitudes of spectrum
// exactly as produced by the finder. Finder errors are returned unchanged.
func (e *Extractor) Compute(spectrum []float64) (frequencies, magnitudes []float64, err error) {
	return e.finder.Find(spectrum, e.params)
}

// FramePeaks holds the peaks of one analysis frame.
type FramePeaks struct {
	// Time is the frame start in seconds.
	Time        float64
	Frequencies []float64
	Magnitudes  []float64
}

// ComputeSignal cuts signal into frames, takes the magnitude spectrum of each
// and runs [Extractor.Compute] on it. opts set the frame and hop size; the
// sample rate is always the one the extractor was configured with.
func (e *Extractor) ComputeSignal(signal []float64, opts ...core.ProcessorOption) ([]FramePeaks, error) {
	opts = append(opts[:len(opts):len(opts)], core.WithSampleRate(e.sampleRate))
	spec, err := spectrum.NewSpectrogram(signal, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]FramePeaks, len(spec.Frames))
	for i, frame := range spec.Frames {
		freqs, mags, err := e.Compute(frame)
		if err != nil {
			return nil, err
		}
		out[i] = FramePeaks{Time: spec.FrameTime(i), Frequencies: freqs, Magnitudes: mags}
	}
	return out, nil
}
