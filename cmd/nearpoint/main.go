// Command nearpoint benchmarks a parallel nearest-point search over randomly
// generated 3D points.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/nearpoint"
	"github.com/hupe1980/nearpoint/bench"
	"github.com/hupe1980/nearpoint/observability"
	"github.com/hupe1980/nearpoint/resource"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Nearest Point Options:")
	fmt.Fprintln(w, "  -num_points (-p)  <int>: number of points (default: 100000)")
	fmt.Fprintln(w, "  -nrepeat <int>:          number of test invocations (default: 10)")
	fmt.Fprintln(w, "  -seed <int>:             random seed (default: 90391)")
	fmt.Fprintln(w, "  -workers <int>:          parallel workers, 0 for GOMAXPROCS (default: 0)")
	fmt.Fprintln(w, "  -min_chunk <int>:        minimum points per worker, 0 for the built-in default")
	fmt.Fprintln(w, "  -kernel <name>:          auto, scalar or vector (default: auto)")
	fmt.Fprintln(w, "  -memory_limit <bytes>:   point memory limit, 0 for unlimited (default: 0)")
	fmt.Fprintln(w, "  -metrics_file <path>:    write Prometheus metrics to path after the run")
	fmt.Fprintln(w, "  -log_level <level>:      debug, info, warn or error (default: info)")
	fmt.Fprintln(w, "  -log_format <format>:    text or json (default: text)")
	fmt.Fprintln(w, "  -help (-h):              print this message")
}

func newFlagSet(cfg *Config, help *bool, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("nearpoint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	fs.IntVar(&cfg.NumPoints, "num_points", cfg.NumPoints, "number of points")
	fs.IntVar(&cfg.NumPoints, "p", cfg.NumPoints, "number of points (shorthand)")
	fs.IntVar(&cfg.Repeat, "nrepeat", cfg.Repeat, "number of test invocations")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers")
	fs.IntVar(&cfg.MinChunk, "min_chunk", cfg.MinChunk, "minimum points per worker")
	fs.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, "block kernel")
	fs.Int64Var(&cfg.MemoryLimit, "memory_limit", cfg.MemoryLimit, "point memory limit in bytes")
	fs.StringVar(&cfg.MetricsFile, "metrics_file", cfg.MetricsFile, "Prometheus text file")
	fs.StringVar(&cfg.LogLevel, "log_level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log_format", cfg.LogFormat, "log format")
	fs.BoolVar(help, "help", false, "print usage")
	fs.BoolVar(help, "h", false, "print usage (shorthand)")
	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	envFile := os.Getenv(envPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := LoadConfig(envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	var help bool
	fs := newFlagSet(&cfg, &help, stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		// flag stops at the first positional argument; the rest would be ignored.
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		printUsage(stderr)
		return exitUsage
	}
	if help {
		// Usage is informational; the benchmark still runs.
		printUsage(stdout)
	}

	if err := ValidateConfig(&cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if err := runBenchmark(ctx, cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func runBenchmark(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	level, err := nearpoint.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := nearpoint.NewFormatLogger(stderr, cfg.LogFormat, level)

	kind, err := nearpoint.ParseKernel(cfg.Kernel)
	if err != nil {
		return err
	}

	var metrics nearpoint.MetricsCollector = nearpoint.NoopMetricsCollector{}
	registry := prometheus.NewRegistry()
	if cfg.MetricsFile != "" {
		metrics = observability.NewPrometheusCollector(registry)
	}

	runner, err := bench.NewRunner(bench.Config{
		NumPoints: cfg.NumPoints,
		Repeat:    cfg.Repeat,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
		MinChunk:  cfg.MinChunk,
		Kernel:    kind,
	},
		bench.WithOutput(stdout),
		bench.WithLogger(logger),
		bench.WithMetricsCollector(metrics),
		bench.WithResources(resource.NewController(resource.Config{MemoryLimitBytes: cfg.MemoryLimit})),
	)
	if err != nil {
		return err
	}

	_, runErr := runner.Run(ctx)

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile, registry); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}
	return runErr
}
