package pointstat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the promstat
// package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordMeanPairwise is called after each mean pairwise distance computation.
	// count is the number of input points, err is nil if successful.
	RecordMeanPairwise(count int, duration time.Duration, err error)

	// RecordNearestNeighbor is called after each nearest-neighbor pass.
	// strategy is the search method that ran (StrategyAuto on validation failures).
	RecordNearestNeighbor(count int, strategy Strategy, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMeanPairwise(int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordNearestNeighbor(int, Strategy, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PairwiseCount      atomic.Int64
	PairwiseErrors     atomic.Int64
	PairwisePoints     atomic.Int64
	PairwiseTotalNanos atomic.Int64
	NeighborCount      atomic.Int64
	NeighborErrors     atomic.Int64
	NeighborPoints     atomic.Int64
	NeighborTotalNanos atomic.Int64
	NeighborKDTreeRuns atomic.Int64
	NeighborBruteRuns  atomic.Int64
}

// RecordMeanPairwise implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMeanPairwise(count int, duration time.Duration, err error) {
	b.PairwiseCount.Add(1)
	b.PairwiseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PairwiseErrors.Add(1)
		return
	}
	b.PairwisePoints.Add(int64(count))
}

// RecordNearestNeighbor implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearestNeighbor(count int, strategy Strategy, duration time.Duration, err error) {
	b.NeighborCount.Add(1)
	b.NeighborTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NeighborErrors.Add(1)
		return
	}
	b.NeighborPoints.Add(int64(count))
	switch strategy {
	case StrategyKDTree:
		b.NeighborKDTreeRuns.Add(1)
	case StrategyBruteForce:
		b.NeighborBruteRuns.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PairwiseCount:    b.PairwiseCount.Load(),
		PairwiseErrors:   b.PairwiseErrors.Load(),
		PairwisePoints:   b.PairwisePoints.Load(),
		PairwiseAvgNanos: avgNanos(b.PairwiseTotalNanos.Load(), b.PairwiseCount.Load()),
		NeighborCount:    b.NeighborCount.Load(),
		NeighborErrors:   b.NeighborErrors.Load(),
		NeighborPoints:   b.NeighborPoints.Load(),
		NeighborAvgNanos: avgNanos(b.NeighborTotalNanos.Load(), b.NeighborCount.Load()),
		KDTreeRuns:       b.NeighborKDTreeRuns.Load(),
		BruteForceRuns:   b.NeighborBruteRuns.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PairwiseCount    int64
	PairwiseErrors   int64
	PairwisePoints   int64
	PairwiseAvgNanos int64
	NeighborCount    int64
	NeighborErrors   int64
	NeighborPoints   int64
	NeighborAvgNanos int64
	KDTreeRuns       int64
	BruteForceRuns   int64
}
