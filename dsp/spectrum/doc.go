// Package spectrum computes magnitude spectra of analysis frames.
//
// FFTs are delegated to algo-fft and element-wise kernels to algo-vecmath.
// The output is the one-sided magnitude spectrum expected by peak pickers in
// [github.com/cwbudde/algo-mir/spectral/peaks]: bin 0 is DC and the last bin
// is Nyquist.
package spectrum
