package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Negative", []float64{-1, -1}, []float64{2, 3}, 5},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{-3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredEuclidean(tt.a, tt.b)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSymmetry(t *testing.T) {
	a := []float64{0.25, -7.5, 3}
	b := []float64{1.125, 2, -4.75}

	assert.Equal(t, SquaredEuclidean(a, b), SquaredEuclidean(b, a))
	assert.InDelta(t, Euclidean(a, b), Euclidean(b, a), 1e-12)
}

func TestEuclideanExtremeMagnitudes(t *testing.T) {
	assert.Equal(t, 1e200, Euclidean([]float64{0, 0}, []float64{1e200, 0}))
	assert.Equal(t, 1e-200, Euclidean([]float64{0, 0}, []float64{1e-200, 0}))
}
