package neighbor

import (
	"math"

	"github.com/hupe1980/pointstat/distance"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Searcher answers nearest-other-point queries over a fixed point set.
type Searcher interface {
	// NearestOther returns the distance from point i to its nearest other point.
	// The set must hold at least two points.
	NearestOther(i int) float64

	// Len returns the number of indexed points.
	Len() int
}

var (
	_ Searcher = (*BruteForce)(nil)
	_ Searcher = (*KDTree)(nil)
)

// normalized holds the points rescaled by a power of two so that the largest
// absolute coordinate lies in [0.5, 1). Squared distances between normalized
// points neither overflow nor lose magnitude, and the rescaling is exact, so
// candidate order is the order of the true distances.
type normalized struct {
	points [][]float64
	exp    int // a normalized distance times 2^exp is the caller's distance
}

func normalize(points [][]float64) normalized {
	var maxAbs float64
	for _, p := range points {
		for _, v := range p {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	exp := 0
	if maxAbs != 0 && !math.IsInf(maxAbs, 0) && !math.IsNaN(maxAbs) {
		_, exp = math.Frexp(maxAbs)
	}

	// Each point gets its own copy, even when the caller aliases slices.
	var dim int
	if len(points) > 0 {
		dim = len(points[0])
	}
	data := make([]float64, 0, len(points)*dim)
	out := make([][]float64, len(points))
	for i, p := range points {
		start := len(data)
		for _, v := range p {
			data = append(data, math.Ldexp(v, -exp))
		}
		out[i] = data[start:len(data):len(data)]
	}
	return normalized{points: out, exp: exp}
}

// distance returns the Euclidean distance between points i and j in the
// caller's units.
func (n normalized) distance(i, j int) float64 {
	return math.Ldexp(distance.Euclidean(n.points[i], n.points[j]), n.exp)
}

// BruteForce scans every other point.
type BruteForce struct {
	normalized
}

// NewBruteForce creates a BruteForce searcher. points is not modified.
func NewBruteForce(points [][]float64) *BruteForce {
	return &BruteForce{normalized: normalize(points)}
}

// Len implements Searcher.
func (b *BruteForce) Len() int { return len(b.points) }

// NearestOther implements Searcher.
func (b *BruteForce) NearestOther(i int) float64 {
	p := b.points[i]
	best, nearest := math.Inf(1), -1
	for j, q := range b.points {
		if j == i {
			continue
		}
		if d := distance.SquaredEuclidean(p, q); d < best || nearest < 0 {
			best, nearest = d, j
			if best == 0 {
				break // cannot get closer
			}
		}
	}
	return b.distance(i, nearest)
}

// KDTree queries a gonum k-d tree for the two closest points, the query
// point itself and its nearest other point.
type KDTree struct {
	normalized
	tree *kdtree.Tree
	// index maps the first coordinate of each normalized point back to its position.
	index map[*float64]int
}

// NewKDTree builds a KDTree searcher. Points must have at least one dimension.
// points is not modified; the caller's ordering is kept.
func NewKDTree(points [][]float64) *KDTree {
	n := normalize(points)

	indexed := make(kdtree.Points, len(n.points))
	index := make(map[*float64]int, len(n.points))
	for i, p := range n.points {
		indexed[i] = kdtree.Point(p)
		index[&p[0]] = i
	}

	return &KDTree{
		normalized: n,
		// kdtree.New reorders indexed while partitioning.
		tree:  kdtree.New(indexed, false),
		index: index,
	}
}

// Len implements Searcher.
func (t *KDTree) Len() int { return len(t.points) }

// NearestOther implements Searcher.
//
// The k=2 result holds the two smallest squared distances of the multiset
// that includes the self match at 0. Coincident points may displace the self
// match, so the neighbor is picked by index rather than by distance.
func (t *KDTree) NearestOther(i int) float64 {
	keep := kdtree.NewNKeeper(2)
	t.tree.NearestSet(keep, kdtree.Point(t.points[i]))

	best := math.Inf(1)
	for _, c := range keep.Heap {
		p, ok := c.Comparable.(kdtree.Point)
		if !ok {
			continue
		}
		j := t.index[&p[0]]
		if j == i {
			continue
		}
		best = math.Min(best, t.distance(i, j))
	}
	return best
}
