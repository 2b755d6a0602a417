// Package testutil provides testing utilities for pointstat.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and computing
// exact spacing statistics by exhaustive scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 3)      // uniform [0, 1)
//	pts := rng.GaussianPoints(1000, 3)     // standard normal
//	pts := rng.ClusteredPoints(1000, 3, 8, 0.05)
//
// # Ground Truth
//
//	nn := testutil.BruteForceNearestOther(pts)
//	mean := testutil.OrderedPairMeanDistance(pts)
package testutil
