package pointstat_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/pointstat"
)

// Example demonstrates both spacing statistics on a right triangle.
func Example() {
	pts := pointstat.PointSet{{0, 0}, {3, 0}, {3, 4}}

	mean, err := pointstat.MeanPairwiseDistance(pts)
	if err != nil {
		log.Fatal(err)
	}
	free, err := pointstat.MeanNearestNeighborDistance(pts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("mean pairwise distance: %.4f\n", mean)
	fmt.Printf("mean nearest-neighbor distance: %.4f\n", free)
	// Output:
	// mean pairwise distance: 4.0000
	// mean nearest-neighbor distance: 3.3333
}

// ExampleAnalyzer_Summarize demonstrates a configured Analyzer.
func ExampleAnalyzer_Summarize() {
	mc := &pointstat.BasicMetricsCollector{}
	a := pointstat.NewAnalyzer(
		pointstat.WithStrategy(pointstat.StrategyKDTree),
		pointstat.WithWorkers(4),
		pointstat.WithMetricsCollector(mc),
	)

	s, err := a.Summarize(context.Background(), pointstat.PointSet{{1, 1}, {1, 1}, {4, 5}})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("n=%d d=%d pairwise=%.4f nearest=%.4f\n", s.Count, s.Dim, s.MeanPairwiseDistance, s.MeanNearestNeighborDistance)
	fmt.Println("kd-tree runs:", mc.GetStats().KDTreeRuns)
	// Output:
	// n=3 d=2 pairwise=3.3333 nearest=1.6667
	// kd-tree runs: 1
}

// ExampleErrDimensionMismatch shows how to detect mixed dimensionality.
func ExampleErrDimensionMismatch() {
	_, err := pointstat.MeanPairwiseDistance(pointstat.PointSet{{0, 0}, {1, 2, 3}})

	var dm *pointstat.ErrDimensionMismatch
	if errors.As(err, &dm) {
		fmt.Println(dm.Index, dm.Expected, dm.Actual)
	}
	// Output: 1 2 3
}

// ExampleDistance demonstrates the two-point distance helper.
func ExampleDistance() {
	d, _ := pointstat.Distance(pointstat.Point{1, 2, 3}, pointstat.Point{4, 6, 3})
	fmt.Println(d)
	// Output: 5
}
