package tempocnn

import "slices"

// Mean returns the arithmetic mean of xs, summed in order. It returns 0 for
// an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median returns the median of xs without modifying it. For an even count it
// is the mean of the two middle values. It returns 0 for an empty slice.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Vote is the outcome of [MajorityVote].
type Vote struct {
	Winner        int
	Votes         int
	RunnerUp      int
	RunnerUpVotes int
}

// Tied reports whether the runner-up received as many votes as the winner.
func (v Vote) Tied() bool {
	return v.RunnerUpVotes > 0 && v.RunnerUpVotes == v.Votes
}

// MajorityVote counts the integer-truncated values of xs and returns the most
// frequent one. Candidates are visited in order of first appearance and only
// a strictly higher count replaces the winner, so the earliest candidate wins
// a tie. The runner-up is the best candidate that is not the winner.
func MajorityVote(xs []float64) Vote {
	if len(xs) == 0 {
		return Vote{}
	}

	counts := make(map[int]int, len(xs))
	for _, x := range xs {
		counts[int(x)]++
	}

	first := int(xs[0])
	v := Vote{Winner: first, RunnerUp: first}
	seen := make(map[int]struct{}, len(counts))
	for _, x := range xs {
		candidate := int(x)
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}

		votes := counts[candidate]
		switch {
		case votes > v.Votes:
			v.RunnerUp, v.RunnerUpVotes = v.Winner, v.Votes
			v.Winner, v.Votes = candidate, votes
		case votes > v.RunnerUpVotes:
			v.RunnerUp, v.RunnerUpVotes = candidate, votes
		}
	}
	return v
}
