// Package pointstat computes spacing statistics of finite point sets in
// n-dimensional Euclidean space.
//
// Two statistics are provided:
//
//   - MeanPairwiseDistance: the mean distance over all ordered pairs of
//     distinct points (denominator n*(n-1)).
//   - MeanNearestNeighborDistance: the mean, over all points, of the distance
//     to the nearest other point. Also known as the mean free length.
//
// Both return 0 for sets with fewer than two points. The only error is
// *ErrDimensionMismatch, returned when points differ in dimensionality.
//
// # Quick Start
//
//	pts := pointstat.PointSet{{0, 0}, {3, 0}, {3, 4}}
//	mean, _ := pointstat.MeanPairwiseDistance(pts)       // 4
//	free, _ := pointstat.MeanNearestNeighborDistance(pts) // 3.333...
//
// # Analyzer
//
// The package-level functions use a default Analyzer. Build your own to add
// logging, metrics or parallel nearest-neighbor queries:
//
//	a := pointstat.NewAnalyzer(
//	    pointstat.WithLogger(pointstat.NewTextLogger(slog.LevelDebug)),
//	    pointstat.WithMetricsCollector(&pointstat.BasicMetricsCollector{}),
//	    pointstat.WithWorkers(runtime.GOMAXPROCS(0)),
//	)
//	s, err := a.Summarize(ctx, pts)
//
// # Nearest-Neighbor Strategies
//
// Nearest-neighbor queries are exact. StrategyAuto scans small sets and
// queries a k-d tree (gonum spatial/kdtree) otherwise; StrategyBruteForce and
// StrategyKDTree force one method. All strategies return identical distances.
package pointstat
