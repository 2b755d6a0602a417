package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/pointstat/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates random points with coordinates from a standard normal distribution.
func (r *RNG) GaussianPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points scattered around random centres in the unit cube.
// spread is the standard deviation of the Gaussian noise around each centre.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) [][]float64 {
	// UniformPoints acquires the lock itself.
	centres := r.UniformPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		centre := centres[i%clusters]
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range dim {
			p[j] = centre[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// WithDuplicates returns a copy of points where roughly rate of the entries
// are replaced by copies of another entry, producing coincident points.
func (r *RNG) WithDuplicates(points [][]float64, rate float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]float64, len(points))
	copy(out, points)
	if len(points) < 2 {
		return out
	}
	for i := range out {
		if r.rand.Float64() < rate {
			src := points[r.rand.Intn(len(points))]
			out[i] = append([]float64(nil), src...)
		}
	}
	return out
}

// LatticePoints returns the side^dim points of a regular grid with the given spacing.
// Every nearest-neighbor distance of a lattice with side >= 2 equals spacing.
func LatticePoints(side, dim int, spacing float64) [][]float64 {
	if side <= 0 || dim <= 0 {
		return nil
	}
	total := int(math.Pow(float64(side), float64(dim)))
	points := make([][]float64, 0, total)
	idx := make([]int, dim)
	for range total {
		p := make([]float64, dim)
		for j, v := range idx {
			p[j] = float64(v) * spacing
		}
		points = append(points, p)

		for j := range idx {
			idx[j]++
			if idx[j] < side {
				break
			}
			idx[j] = 0
		}
	}
	return points
}

// BruteForceNearestOther computes, for every point, the exact distance to its
// closest point with a different index. Ground truth for tests.
func BruteForceNearestOther(points [][]float64) []float64 {
	out := make([]float64, len(points))
	if len(points) < 2 {
		return out
	}
	for i, p := range points {
		best := math.Inf(1)
		for j, q := range points {
			if i == j {
				continue
			}
			best = math.Min(best, distance.Euclidean(p, q))
		}
		out[i] = best
	}
	return out
}

// OrderedPairMeanDistance averages the Euclidean distance over every ordered
// pair (i, j) with i != j, dividing by n*(n-1). Returns 0 for fewer than two points.
func OrderedPairMeanDistance(points [][]float64) float64 {
	var (
		sum float64
		cnt int
	)
	for i := range points {
		for j := range points {
			if i != j {
				sum += distance.Euclidean(points[i], points[j])
				cnt++
			}
		}
	}
	if cnt == 0 {
		return 0
	}
	return sum / float64(cnt)
}
