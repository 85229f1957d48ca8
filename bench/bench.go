// Package bench runs the nearest-point benchmark: it generates a random point
// set and query point, repeats the parallel search and reports timing and
// bandwidth.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/nearpoint"
	"github.com/hupe1980/nearpoint/internal/kernel"
	"github.com/hupe1980/nearpoint/point"
	"github.com/hupe1980/nearpoint/resource"
	"golang.org/x/time/rate"
)

// Config describes one benchmark run.
type Config struct {
	NumPoints int              // N, number of points
	Repeat    int              // R, number of timed searches
	Seed      int64            // Generator seed
	Workers   int              // Reducer workers, <= 0 uses GOMAXPROCS
	MinChunk  int              // Minimum points per partition, <= 0 uses the reducer default
	Kernel    nearpoint.Kernel // Block kernel
}

// DefaultConfig returns the configuration of the reference benchmark.
func DefaultConfig() Config {
	return Config{
		NumPoints: 100000,
		Repeat:    10,
		Seed:      point.DefaultSeed,
		Kernel:    nearpoint.KernelAuto,
	}
}

// Validate returns an error if the configuration cannot be run.
func (c Config) Validate() error {
	return errors.Join(
		nearpoint.ValidatePointCount(c.NumPoints),
		nearpoint.ValidateRepeat(c.Repeat),
	)
}

// Runner executes benchmark runs.
type Runner struct {
	cfg       Config
	out       io.Writer
	logger    *nearpoint.Logger
	metrics   nearpoint.MetricsCollector
	resources *resource.Controller
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the writer receiving the per-repetition lines and the report table.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger configures structured logging.
func WithLogger(logger *nearpoint.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetricsCollector configures the collector receiving search and run metrics.
func WithMetricsCollector(mc nearpoint.MetricsCollector) Option {
	return func(r *Runner) {
		r.metrics = mc
	}
}

// WithResources sets the controller the point set memory is reserved from.
// Runs sharing a controller wait for each other's memory to be released.
func WithResources(rc *resource.Controller) Option {
	return func(r *Runner) {
		r.resources = rc
	}
}

// NewRunner validates cfg and creates a Runner.
func NewRunner(cfg Config, optFns ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:     cfg,
		out:     io.Discard,
		logger:  nearpoint.NoopLogger(),
		metrics: nearpoint.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(r)
	}
	if r.logger == nil {
		r.logger = nearpoint.NoopLogger()
	}
	if r.metrics == nil {
		r.metrics = nearpoint.NoopMetricsCollector{}
	}
	return r, nil
}

// footprint returns the bytes the run allocates for coordinates.
func (r *Runner) footprint() int64 {
	bytes := int64(r.cfg.NumPoints) * point.BytesPerPoint
	if kernel.Resolve(r.cfg.Kernel) == kernel.Vector {
		bytes *= 2 // column view
	}
	return bytes
}

// Run generates the data, performs cfg.Repeat searches and writes one
// "Min indx" line per search followed by the report table.
// ctx bounds the wait for memory and is checked between searches; a canceled
// run returns ctx.Err().
func (r *Runner) Run(ctx context.Context) (Report, error) {
	cfg := r.cfg
	report := Report{NumPoints: cfg.NumPoints, Repeat: cfg.Repeat}

	release, err := r.resources.Reserve(ctx, r.footprint())
	if err != nil {
		return report, fmt.Errorf("allocate %d points: %w", cfg.NumPoints, err)
	}
	defer release()

	gen := point.NewGenerator(cfg.Seed)
	set := gen.Set(cfg.NumPoints)
	query := gen.Point()

	opts := []nearpoint.Option{
		nearpoint.WithWorkers(cfg.Workers),
		nearpoint.WithKernel(cfg.Kernel),
		nearpoint.WithLogger(r.logger),
		nearpoint.WithMetricsCollector(r.metrics),
	}
	if cfg.MinChunk > 0 {
		opts = append(opts, nearpoint.WithMinChunk(cfg.MinChunk))
	}
	searcher, err := nearpoint.New(set, opts...)
	if err != nil {
		return report, err
	}

	logger := r.logger.WithPoints(cfg.NumPoints)
	logger.InfoContext(ctx, "benchmark starting",
		"repeats", cfg.Repeat,
		"seed", cfg.Seed,
		"kernel", searcher.Kernel().String(),
		"workers", searcher.Workers(),
		"query", query.String(),
	)

	progress := rate.Sometimes{First: 1, Interval: time.Second}
	report.Results = make([]nearpoint.Result, 0, cfg.Repeat)

	start := time.Now()
	for rep := 0; rep < cfg.Repeat; rep++ {
		res, err := searcher.Nearest(ctx, query)
		if err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}
		report.Results = append(report.Results, res)

		if _, err := fmt.Fprintf(r.out, "Min indx: %d with dist2 %f\n", res.Index, res.Dist2); err != nil {
			return report, fmt.Errorf("write result: %w", err)
		}

		progress.Do(func() {
			logger.DebugContext(ctx, "repetition completed", "repeat", rep+1, "of", cfg.Repeat)
		})
	}
	report.Elapsed = time.Since(start)

	r.metrics.RecordRun(cfg.NumPoints, cfg.Repeat, report.Elapsed)
	logger.LogRun(ctx, cfg.Repeat, report.Elapsed, report.BandwidthGBs())

	if err := report.WriteTable(r.out); err != nil {
		return report, fmt.Errorf("write report: %w", err)
	}
	return report, nil
}
