// Package peaks extracts spectral peaks by translating frequency-domain
// settings into the generic parameters of a [Finder].
//
// The peak search itself is injected. This package only maps
//
//	SampleRate/2       -> Range
//	MaxPeaks           -> MaxPeaks
//	MinFrequency       -> MinPosition
//	MaxFrequency       -> MaxPosition
//	MagnitudeThreshold -> Threshold
//	OrderBy magnitude  -> OrderAmplitude
//	OrderBy frequency  -> OrderPosition
//
// once at construction and forwards each spectrum to the finder. The
// threshold is applied to whatever scale the spectrum is in (linear or dB).
package peaks
