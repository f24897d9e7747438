package bitseq

import "log/slog"

const (
	// DefaultGrowthFactor is the capacity multiplier used when a vector
	// outgrows its word buffer.
	DefaultGrowthFactor = 2.0

	// MinGrowthFactor is the smallest accepted growth factor. Anything lower
	// would make PushBack reallocate too often to stay amortized O(1).
	MinGrowthFactor = 1.25
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	growthFactor     float64
	initialCapacity  int
}

// Option configures a Vector.
type Option func(*options)

// WithLogger configures structured logging. Vectors log their kernel set at
// creation and every buffer reallocation, both at debug level.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitseq.NewJSONLogger(slog.LevelDebug)
//	v := bitseq.New[uint64](bitseq.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for vector operations.
// Pass nil to disable metrics collection.
//
//	metrics := &bitseq.BasicMetricsCollector{}
//	v := bitseq.New[uint64](bitseq.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithGrowthFactor sets the capacity multiplier applied when the word buffer
// is full. Values below MinGrowthFactor are raised to it.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growthFactor = max(f, MinGrowthFactor)
	}
}

// WithInitialCapacity reserves room for n bits up front.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = max(n, 0)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		growthFactor:     DefaultGrowthFactor,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
