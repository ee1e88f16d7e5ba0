package spectrum

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mir/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Hann returns a periodic Hann window of the given length.
func Hann(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(length))
	}
	return out
}

// FrameMagnitude windows frame with a periodic Hann window, zero-pads it to
// the next power of two and returns the one-sided magnitude spectrum
// (size/2+1 bins).
func FrameMagnitude(frame []float64) ([]float64, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("spectrum: frame must not be empty")
	}

	size := core.NextPowerOfTwo(len(frame))
	if size < 2 {
		size = 2
	}

	windowed := make([]float64, len(frame))
	vecmath.MulBlock(windowed, frame, Hann(len(frame)))

	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for size %d: %w", size, err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return Magnitude(out[:size/2+1]), nil
}

// ToDB converts a linear magnitude spectrum to dB. Zero bins map to -Inf.
func ToDB(magnitude []float64) []float64 {
	out := make([]float64, len(magnitude))
	for i, v := range magnitude {
		out[i] = core.LinearToDB(v)
	}
	return out
}

// BinFrequency returns the frequency in Hz of bin in a one-sided spectrum of
// bins bins.
func BinFrequency(bin, bins int, sampleRate float64) float64 {
	if bins < 2 {
		return 0
	}
	return float64(bin) * sampleRate / float64(2*(bins-1))
}
