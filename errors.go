package pointstat

import (
	"fmt"
)

// ErrDimensionMismatch indicates that a point does not share the
// dimensionality of the set it belongs to.
//
// Index is the position of the offending point in its PointSet, or -1 when
// the mismatch was found between two standalone points (see Distance).
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}
