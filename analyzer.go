package pointstat

import (
	"context"
	"time"

	"github.com/hupe1980/pointstat/distance"
	"github.com/hupe1980/pointstat/internal/neighbor"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// queryChunk is the number of nearest-neighbor queries handed to one worker
// at a time. The context is checked between chunks.
const queryChunk = 256

const (
	statMeanPairwise        = "mean_pairwise_distance"
	statMeanNearestNeighbor = "mean_nearest_neighbor_distance"
	statNearestNeighbors    = "nearest_neighbor_distances"
	statSummary             = "summary"
)

// Summary holds both spacing statistics of a PointSet.
type Summary struct {
	Count                       int
	Dim                         int
	MeanPairwiseDistance        float64
	MeanNearestNeighborDistance float64
}

// Analyzer computes spacing statistics over point sets.
//
// An Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	opts options
}

// NewAnalyzer creates an Analyzer configured by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Analyzer{opts: o}
}

// MeanPairwiseDistance returns the mean Euclidean distance over all ordered
// pairs (i, j), i != j, i.e. the pair sum divided by n*(n-1).
// Sets with fewer than two points yield 0.
func (a *Analyzer) MeanPairwiseDistance(ctx context.Context, points PointSet) (float64, error) {
	l := a.logger(points)
	m, err := a.meanPairwise(ctx, points, points.Validate())
	l.LogStatistic(ctx, statMeanPairwise, err)
	if err != nil {
		return 0, err
	}
	return m, nil
}

// MeanNearestNeighborDistance returns the mean, over all points, of the
// distance from each point to its nearest other point.
// Sets with fewer than two points yield 0.
func (a *Analyzer) MeanNearestNeighborDistance(ctx context.Context, points PointSet) (float64, error) {
	l := a.logger(points)
	dists, l, err := a.nearestNeighbors(ctx, l, points, points.Validate())
	l.LogStatistic(ctx, statMeanNearestNeighbor, err)
	if err != nil {
		return 0, err
	}
	return mean(dists), nil
}

// NearestNeighborDistances returns, in input order, each point's distance to
// its nearest other point. Sets with fewer than two points yield n zeros.
func (a *Analyzer) NearestNeighborDistances(ctx context.Context, points PointSet) ([]float64, error) {
	l := a.logger(points)
	dists, l, err := a.nearestNeighbors(ctx, l, points, points.Validate())
	l.LogStatistic(ctx, statNearestNeighbors, err)
	return dists, err
}

// Summarize computes both statistics in one call.
//
// The points are validated once and a single summary record is logged. The
// metrics collector sees one observation per statistic, as if both had been
// requested separately; a validation failure is not attributed to either.
func (a *Analyzer) Summarize(ctx context.Context, points PointSet) (Summary, error) {
	l := a.logger(points)

	s, l, err := func() (Summary, *Logger, error) {
		if err := points.Validate(); err != nil {
			return Summary{}, l, err
		}
		pairwise, err := a.meanPairwise(ctx, points, nil)
		if err != nil {
			return Summary{}, l, err
		}
		dists, l, err := a.nearestNeighbors(ctx, l, points, nil)
		if err != nil {
			return Summary{}, l, err
		}
		return Summary{
			Count:                       len(points),
			Dim:                         points.Dim(),
			MeanPairwiseDistance:        pairwise,
			MeanNearestNeighborDistance: mean(dists),
		}, l, nil
	}()

	l.LogStatistic(ctx, statSummary, err)
	return s, err
}

func (a *Analyzer) logger(points PointSet) *Logger {
	return a.opts.logger.WithCount(len(points)).WithDimension(points.Dim())
}

// meanPairwise times and records one pairwise pass. invalid is the result of
// validating points, or nil when the caller already did.
func (a *Analyzer) meanPairwise(ctx context.Context, points PointSet, invalid error) (float64, error) {
	start := time.Now()
	m, err := func() (float64, error) {
		if invalid != nil {
			return 0, invalid
		}
		return pairwiseMean(ctx, points)
	}()
	a.opts.metricsCollector.RecordMeanPairwise(len(points), time.Since(start), err)
	return m, err
}

func pairwiseMean(ctx context.Context, points PointSet) (float64, error) {
	n := len(points)
	if n < 2 {
		return 0, nil
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for j := i + 1; j < n; j++ {
			sum += distance.Euclidean(points[i], points[j])
		}
	}
	// Each unordered pair stands for the two ordered pairs (i, j) and (j, i).
	return 2 * sum / float64(n*(n-1)), nil
}

// nearestNeighbors times and records one nearest-neighbor pass. It returns l
// extended with the strategy field once a strategy has been chosen.
func (a *Analyzer) nearestNeighbors(ctx context.Context, l *Logger, points PointSet, invalid error) ([]float64, *Logger, error) {
	start := time.Now()
	strategy := StrategyAuto

	dists, err := func() ([]float64, error) {
		if invalid != nil {
			return nil, invalid
		}
		n := len(points)
		strategy = a.opts.strategy.resolve(n, points.Dim(), a.opts.bruteForceThreshold)
		l = l.WithStrategy(strategy)
		out := make([]float64, n)
		if n < 2 {
			return out, nil
		}

		var s neighbor.Searcher
		if strategy == StrategyKDTree {
			s = neighbor.NewKDTree(points.coords())
		} else {
			s = neighbor.NewBruteForce(points.coords())
		}

		workers := min(a.opts.workers, (n+queryChunk-1)/queryChunk)
		l.LogStrategy(ctx, workers)
		if err := queryAll(ctx, s, out, workers); err != nil {
			return nil, err
		}
		return out, nil
	}()

	a.opts.metricsCollector.RecordNearestNeighbor(len(points), strategy, time.Since(start), err)
	return dists, l, err
}

func mean(v []float64) float64 {
	if len(v) < 2 {
		return 0
	}
	return floats.Sum(v) / float64(len(v))
}

// queryAll fills out[i] with the nearest-other distance of point i. Each
// worker owns a disjoint chunk of out.
func queryAll(ctx context.Context, s neighbor.Searcher, out []float64, workers int) error {
	if workers <= 1 {
		for start := 0; start < len(out); start += queryChunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < min(start+queryChunk, len(out)); i++ {
				out[i] = s.NearestOther(i)
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(out); start += queryChunk {
		end := min(start+queryChunk, len(out))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = s.NearestOther(i)
			}
			return nil
		})
	}

	return g.Wait()
}
