package tempocnn_test

import (
	"fmt"

	"github.com/cwbudde/algo-mir/internal/testutil"
	"github.com/cwbudde/algo-mir/rhythm/tempocnn"
)

func ExampleEstimator_Aggregate() {
	preds := [][]float64{
		testutil.PeakedDistribution(tempocnn.Classes, 90, 0.8),
		testutil.PeakedDistribution(tempocnn.Classes, 90, 0.6),
		testutil.PeakedDistribution(tempocnn.Classes, 45, 0.4),
	}

	for _, method := range tempocnn.Methods() {
		cfg := tempocnn.DefaultConfig()
		cfg.AggregationMethod = method.String()
		est, err := tempocnn.New(nil, cfg)
		if err != nil {
			fmt.Println(err)
			return
		}
		res, err := est.Aggregate(preds)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-8s global=%.1f local=%v\n", method, res.Global, res.Local)
	}

	// Output:
	// mean     global=105.0 local=[120 120 75]
	// median   global=120.0 local=[120 120 75]
	// majority global=120.0 local=[120 120 75]
}

func ExampleMajorityVote() {
	v := tempocnn.MajorityVote([]float64{128, 64, 64, 128})
	fmt.Printf("winner=%d votes=%d tied=%v runner-up=%d\n", v.Winner, v.Votes, v.Tied(), v.RunnerUp)

	// Output:
	// winner=128 votes=2 tied=true runner-up=64
}
