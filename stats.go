package pointstat

import "context"

var defaultAnalyzer = NewAnalyzer()

// MeanPairwiseDistance returns the mean Euclidean distance over all ordered
// pairs of distinct points. It returns 0 for sets with fewer than two points
// and *ErrDimensionMismatch if the points differ in dimensionality.
func MeanPairwiseDistance(points PointSet) (float64, error) {
	return defaultAnalyzer.MeanPairwiseDistance(context.Background(), points)
}

// MeanNearestNeighborDistance returns the mean distance from each point to
// its nearest other point, the mean free length of the set. It returns 0 for
// sets with fewer than two points and *ErrDimensionMismatch if the points
// differ in dimensionality.
func MeanNearestNeighborDistance(points PointSet) (float64, error) {
	return defaultAnalyzer.MeanNearestNeighborDistance(context.Background(), points)
}

// NearestNeighborDistances returns each point's distance to its nearest other point.
func NearestNeighborDistances(points PointSet) ([]float64, error) {
	return defaultAnalyzer.NearestNeighborDistances(context.Background(), points)
}

// Summarize computes both spacing statistics of points.
func Summarize(points PointSet) (Summary, error) {
	return defaultAnalyzer.Summarize(context.Background(), points)
}
