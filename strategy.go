package pointstat

import "fmt"

// Strategy is the exact nearest-neighbor search method.
type Strategy int

const (
	// StrategyAuto scans small sets and builds a k-d tree for larger ones.
	StrategyAuto Strategy = iota
	// StrategyBruteForce compares every pair of points.
	StrategyBruteForce
	// StrategyKDTree queries a k-d tree for each point.
	StrategyKDTree
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyBruteForce:
		return "brute_force"
	case StrategyKDTree:
		return "kdtree"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// resolve picks the concrete method for n points of dimensionality dim.
func (s Strategy) resolve(n, dim, threshold int) Strategy {
	if dim == 0 {
		return StrategyBruteForce
	}
	switch s {
	case StrategyBruteForce, StrategyKDTree:
		return s
	}
	if n < threshold {
		return StrategyBruteForce
	}
	return StrategyKDTree
}
