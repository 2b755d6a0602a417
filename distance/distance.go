package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the Euclidean (L2) distance between two points.
// Assumes points are the same length (caller's responsibility).
// Scaled internally, so it neither overflows nor underflows for finite input.
func Euclidean(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
//
// No scaling is applied: use it for ranking points whose coordinates are of
// moderate magnitude. The summation order matches gonum's kdtree.Point.Distance.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}
