package tempocnn

// Predictor produces one probability distribution of [Classes] values per
// audio segment of signal, in temporal order.
//
// Implementations wrap the inference runtime; errors are returned to the
// caller of [Estimator.Compute] unchanged.
type Predictor interface {
	Predict(signal []float64) ([][]float64, error)
}

// PredictorFunc adapts a function to [Predictor].
type PredictorFunc func(signal []float64) ([][]float64, error)

// Predict calls f(signal).
func (f PredictorFunc) Predict(signal []float64) ([][]float64, error) {
	return f(signal)
}

// StaticPredictor replays a fixed prediction matrix regardless of the signal,
// for example model output stored by an earlier run.
type StaticPredictor [][]float64

// Predict returns a copy of the stored predictions.
func (s StaticPredictor) Predict(_ []float64) ([][]float64, error) {
	out := make([][]float64, len(s))
	for i, row := range s {
		out[i] = append([]float64(nil), row...)
	}
	return out, nil
}
