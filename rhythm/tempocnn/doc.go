// Package tempocnn aggregates the per-segment output of a TempoCNN-style
// tempo classifier into local and global tempo estimates.
//
// The classifier itself is not part of this package. It is injected as a
// [Predictor] that turns a signal into one softmax distribution of [Classes]
// values per audio segment (about 6 seconds each with the usual patch
// settings). Index i of a distribution corresponds to i+[BPMOffset] BPM.
//
// For every segment the most likely class gives the local tempo and its
// probability the local confidence. The local tempi are then reduced to a
// single global tempo with one of three methods:
//
//   - [MethodMean]: arithmetic mean
//   - [MethodMedian]: sorted median, mean of the middle pair for even counts
//   - [MethodMajority]: most frequent integer tempo, first seen wins ties
//
// Majority voting is the recommended method when the input is expected to
// have a constant tempo. A tie between the two most voted tempi is not an
// error; it is logged at warn level and reported in [Result.Tie].
//
// An [Estimator] validates and normalizes its configuration once in [New]
// and is safe for concurrent use afterwards.
package tempocnn
