package pointstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSet(t *testing.T) {
	t.Run("Dim", func(t *testing.T) {
		assert.Equal(t, 0, PointSet{}.Dim())
		assert.Equal(t, 0, PointSet(nil).Dim())
		assert.Equal(t, 3, PointSet{{1, 2, 3}}.Dim())
		assert.Equal(t, 2, Point{1, 2}.Dim())
	})

	t.Run("Len", func(t *testing.T) {
		assert.Equal(t, 0, PointSet(nil).Len())
		assert.Equal(t, 2, PointSet{{1}, {2}}.Len())
	})

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, PointSet(nil).Validate())
		assert.NoError(t, PointSet{{}, {}}.Validate())
		assert.NoError(t, PointSet{{1, 2}, {3, 4}, {1, 2}}.Validate())

		err := PointSet{{1, 2}, {3, 4}, {5}, {6, 7, 8}}.Validate()
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, &ErrDimensionMismatch{Index: 2, Expected: 2, Actual: 1}, dm)
		assert.EqualError(t, err, "dimension mismatch at point 2: expected 2, got 1")
	})
}

func TestDistance(t *testing.T) {
	d, err := Distance(Point{0, 0}, Point{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d, err = Distance(Point{}, Point{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = Distance(Point{1, 2}, Point{1, 2, 3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, -1, dm.Index)
	assert.EqualError(t, err, "dimension mismatch: expected 2, got 3")
}
