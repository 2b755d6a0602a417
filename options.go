package pointstat

// DefaultBruteForceThreshold is the point count below which StrategyAuto
// scans instead of building a k-d tree.
const DefaultBruteForceThreshold = 64

type options struct {
	logger              *Logger
	metricsCollector    MetricsCollector
	strategy            Strategy
	bruteForceThreshold int
	workers             int
}

func defaultOptions() options {
	return options{
		logger:              NoopLogger(),
		metricsCollector:    NoopMetricsCollector{},
		strategy:            StrategyAuto,
		bruteForceThreshold: DefaultBruteForceThreshold,
		workers:             1,
	}
}

// Option configures an Analyzer.
//
// Invalid values are replaced by their defaults, so NewAnalyzer cannot fail.
type Option func(*options)

// WithLogger sets the structured logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithStrategy selects the nearest-neighbor search method.
//
// Every strategy returns identical distances; the choice only affects speed.
// StrategyKDTree falls back to brute force for zero-dimensional points.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		switch s {
		case StrategyAuto, StrategyBruteForce, StrategyKDTree:
			o.strategy = s
		default:
			o.strategy = StrategyAuto
		}
	}
}

// WithBruteForceThreshold sets the point count below which StrategyAuto
// uses a brute-force scan. Negative values restore the default.
func WithBruteForceThreshold(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = DefaultBruteForceThreshold
		}
		o.bruteForceThreshold = n
	}
}

// WithWorkers sets how many goroutines answer nearest-neighbor queries.
// Values below 1 restore the default of 1.
//
// Results do not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
