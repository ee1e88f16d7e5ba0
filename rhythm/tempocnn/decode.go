package tempocnn

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps tiny inputs on the sequential path.
const minRowsPerWorker = 64

// Decode maps every distribution to its most likely tempo and the
// probability of that tempo. The first maximum wins when several classes
// share the top probability. Output order follows input order.
func Decode(predictions [][]float64) (local, confidence []float64) {
	local = make([]float64, len(predictions))
	confidence = make([]float64, len(predictions))
	decodeRange(predictions, local, confidence, 0, len(predictions))
	return local, confidence
}

// decodeParallel splits the rows into contiguous chunks decoded by at most
// workers goroutines. Each goroutine writes a disjoint index range, so the
// result equals Decode.
func decodeParallel(predictions [][]float64, workers int) (local, confidence []float64) {
	n := len(predictions)
	if workers > n/minRowsPerWorker {
		workers = n / minRowsPerWorker
	}
	if workers <= 1 {
		return Decode(predictions)
	}

	local = make([]float64, n)
	confidence = make([]float64, n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			decodeRange(predictions, local, confidence, lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	return local, confidence
}

func decodeRange(predictions [][]float64, local, confidence []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		idx := argmax(predictions[i])
		local[i] = float64(idx + BPMOffset)
		if idx < len(predictions[i]) {
			confidence[i] = predictions[i][idx]
		}
	}
}

// argmax returns the index of the first maximum, or 0 for an empty slice.
func argmax(dist []float64) int {
	best := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] > dist[best] {
			best = i
		}
	}
	return best
}

// validatePredictions enforces the input contract of [Estimator.Aggregate].
func validatePredictions(predictions [][]float64) error {
	if len(predictions) == 0 {
		return inputError("at least one segment is required")
	}
	for i, row := range predictions {
		if len(row) != Classes {
			return inputError("segment %d has %d classes, want %d", i, len(row), Classes)
		}
		for j, p := range row {
			if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
				return inputError("segment %d class %d: invalid probability %v", i, j, p)
			}
		}
	}
	return nil
}
