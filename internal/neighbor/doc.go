// Package neighbor implements exact nearest-other-point searchers.
//
// A searcher is built once over a fixed point set and answers, for any
// index i, the Euclidean distance from point i to the closest point with a
// different index. Self matches are excluded by index, so coincident points
// report a distance of exactly 0.
//
// Two implementations are provided:
//   - BruteForce: O(n) scan per query, no build cost.
//   - KDTree: gonum k-d tree, O(log n) expected per query.
//
// Both rank candidates by squared distance over a copy of the points rescaled
// by a power of two, then report the Euclidean distance of the winning pair in
// the caller's units. Finite coordinates of any magnitude therefore neither
// overflow nor collapse to 0, and both searchers return the same distances.
// Searchers are read-only after construction and safe for concurrent queries.
package neighbor
