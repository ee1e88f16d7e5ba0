package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-mir/dsp/core"
)

// Spectrogram is the sequence of one-sided magnitude spectra of equally
// spaced frames of a signal.
type Spectrogram struct {
	Frames     [][]float64
	SampleRate float64
	FrameSize  int
	HopSize    int
}

// NewSpectrogram cuts signal into frames of the configured size and hop and
// computes [FrameMagnitude] of each. Trailing samples that do not fill a
// whole frame are dropped.
func NewSpectrogram(signal []float64, opts ...core.ProcessorOption) (Spectrogram, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	n := cfg.Frames(len(signal))
	s := Spectrogram{
		Frames:     make([][]float64, n),
		SampleRate: cfg.SampleRate,
		FrameSize:  cfg.FrameSize,
		HopSize:    cfg.HopSize,
	}
	for i := range n {
		start := i * cfg.HopSize
		mag, err := FrameMagnitude(signal[start : start+cfg.FrameSize])
		if err != nil {
			return Spectrogram{}, fmt.Errorf("spectrum: frame %d: %w", i, err)
		}
		s.Frames[i] = mag
	}
	return s, nil
}

// FrameTime returns the start of frame i in seconds.
func (s Spectrogram) FrameTime(i int) float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(i*s.HopSize) / s.SampleRate
}

// BinFrequency returns the frequency in Hz of bin in any frame of s.
func (s Spectrogram) BinFrequency(bin int) float64 {
	if len(s.Frames) == 0 {
		return 0
	}
	return BinFrequency(bin, len(s.Frames[0]), s.SampleRate)
}
