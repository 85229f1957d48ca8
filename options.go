package nearpoint

import (
	"log/slog"

	"github.com/hupe1980/nearpoint/internal/kernel"
	"github.com/hupe1980/nearpoint/reduce"
)

// Kernel selects the block kernel used to fold partitions.
type Kernel = kernel.Kind

const (
	// KernelAuto picks the best kernel for the current CPU.
	KernelAuto = kernel.Auto
	// KernelScalar is the portable point-by-point kernel.
	KernelScalar = kernel.Scalar
	// KernelVector is the column-wise SIMD-accelerated kernel.
	KernelVector = kernel.Vector
)

// ErrUnknownKernel is returned by ParseKernel for unknown names.
var ErrUnknownKernel = kernel.ErrUnknownKind

// ParseKernel parses "auto", "scalar" or "vector".
func ParseKernel(s string) (Kernel, error) {
	return kernel.ParseKind(s)
}

type options struct {
	workers          int
	minChunk         int
	kernel           Kernel
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Searcher.
type Option func(*options)

// WithWorkers sets the maximum number of partitions reduced concurrently.
// n <= 0 uses runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMinChunk sets the minimum number of points per partition.
// Sets shorter than two chunks are reduced on the calling goroutine.
func WithMinChunk(n int) Option {
	return func(o *options) {
		o.minChunk = n
	}
}

// WithKernel selects the block kernel. KernelAuto is the default.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &nearpoint.BasicMetricsCollector{}
//	s, _ := nearpoint.New(set, nearpoint.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for searches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := nearpoint.NewJSONLogger(slog.LevelDebug)
//	s, _ := nearpoint.New(set, nearpoint.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		workers:          reduce.DefaultOptions.Workers,
		minChunk:         reduce.DefaultOptions.MinChunk,
		kernel:           KernelAuto,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
