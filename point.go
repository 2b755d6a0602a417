package pointstat

import (
	"github.com/hupe1980/pointstat/distance"
)

// Point is an ordered tuple of real-valued coordinates.
//
// The package never modifies a Point it is given.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// PointSet is a finite collection of points sharing one dimensionality.
// Order does not affect any statistic; coincident points are allowed.
type PointSet []Point

// Len returns the number of points.
func (s PointSet) Len() int { return len(s) }

// Dim returns the dimensionality of the set, taken from its first point.
// The empty set has dimensionality 0.
func (s PointSet) Dim() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Validate reports the first point, in order, whose dimensionality differs
// from the first point's. It returns nil for a well-formed set.
func (s PointSet) Validate() error {
	d := s.Dim()
	for i, p := range s {
		if len(p) != d {
			return &ErrDimensionMismatch{Index: i, Expected: d, Actual: len(p)}
		}
	}
	return nil
}

func (s PointSet) coords() [][]float64 {
	out := make([][]float64, len(s))
	for i, p := range s {
		out[i] = p
	}
	return out
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Index: -1, Expected: len(a), Actual: len(b)}
	}
	return distance.Euclidean(a, b), nil
}
