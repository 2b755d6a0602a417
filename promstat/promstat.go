// Package promstat exports pointstat metrics to Prometheus.
//
//	c := promstat.New(promstat.WithNamespace("myapp"))
//	prometheus.MustRegister(c)
//	a := pointstat.NewAnalyzer(pointstat.WithMetricsCollector(c))
package promstat

import (
	"time"

	"github.com/hupe1980/pointstat"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelStatistic = "statistic"
	labelStatus    = "status"
	labelStrategy  = "strategy"

	statPairwise = "mean_pairwise"
	statNeighbor = "nearest_neighbor"
)

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace prefixes every metric name. Defaults to "pointstat".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets sets the latency histogram buckets in seconds.
// Defaults to prometheus.DefBuckets.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// Collector implements pointstat.MetricsCollector and prometheus.Collector.
type Collector struct {
	latency *prometheus.HistogramVec
	points  *prometheus.CounterVec
	runs    *prometheus.CounterVec
}

var (
	_ pointstat.MetricsCollector = (*Collector)(nil)
	_ prometheus.Collector       = (*Collector)(nil)
)

// New creates a Collector. Register it with a prometheus.Registerer to export it.
func New(opts ...Option) *Collector {
	o := options{
		namespace: "pointstat",
		buckets:   prometheus.DefBuckets,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of spacing statistic computations",
			Buckets:   o.buckets,
		}, []string{labelStatistic, labelStatus}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "points_processed_total",
			Help:      "Total points processed by successful computations",
		}, []string{labelStatistic}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "nearest_neighbor_runs_total",
			Help:      "Total successful nearest-neighbor passes by search strategy",
		}, []string{labelStrategy}),
	}
}

// RecordMeanPairwise implements pointstat.MetricsCollector.
func (c *Collector) RecordMeanPairwise(count int, d time.Duration, err error) {
	c.latency.WithLabelValues(statPairwise, status(err)).Observe(d.Seconds())
	if err == nil {
		c.points.WithLabelValues(statPairwise).Add(float64(count))
	}
}

// RecordNearestNeighbor implements pointstat.MetricsCollector.
func (c *Collector) RecordNearestNeighbor(count int, strategy pointstat.Strategy, d time.Duration, err error) {
	c.latency.WithLabelValues(statNeighbor, status(err)).Observe(d.Seconds())
	if err == nil {
		c.points.WithLabelValues(statNeighbor).Add(float64(count))
		c.runs.WithLabelValues(strategy.String()).Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.latency.Describe(ch)
	c.points.Describe(ch)
	c.runs.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.latency.Collect(ch)
	c.points.Collect(ch)
	c.runs.Collect(ch)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
