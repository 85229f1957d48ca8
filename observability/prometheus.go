// Package observability provides a Prometheus implementation of
// nearpoint.MetricsCollector.
package observability

import (
	"fmt"
	"time"

	"github.com/hupe1980/nearpoint"
	"github.com/hupe1980/nearpoint/point"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ nearpoint.MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector records searches and benchmark runs as Prometheus metrics.
type PrometheusCollector struct {
	searchLatency *prometheus.HistogramVec
	pointsScanned prometheus.Counter
	runs          prometheus.Counter
	runSeconds    prometheus.Gauge
	bandwidth     prometheus.Gauge
}

// NewPrometheusCollector creates a collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusCollector{
		searchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nearpoint_search_latency_seconds",
			Help:    "Latency of nearest-point searches",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"status"}),
		pointsScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "nearpoint_points_scanned_total",
			Help: "Total number of points evaluated by successful searches",
		}),
		runs: factory.NewCounter(prometheus.CounterOpts{
			Name: "nearpoint_benchmark_runs_total",
			Help: "Total benchmark runs completed",
		}),
		runSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nearpoint_benchmark_last_run_seconds",
			Help: "Wall-clock duration of the last benchmark run",
		}),
		bandwidth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nearpoint_benchmark_bandwidth_gigabytes_per_second",
			Help: "Coordinate bandwidth achieved by the last benchmark run",
		}),
	}
}

// RecordSearch implements nearpoint.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(candidates int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.searchLatency.WithLabelValues(status).Observe(duration.Seconds())
	if err == nil {
		c.pointsScanned.Add(float64(candidates))
	}
}

// RecordRun implements nearpoint.MetricsCollector.
func (c *PrometheusCollector) RecordRun(points, repeats int, elapsed time.Duration) {
	c.runs.Inc()
	c.runSeconds.Set(elapsed.Seconds())
	if elapsed > 0 {
		c.bandwidth.Set(float64(points) * point.BytesPerPoint * float64(repeats) / elapsed.Seconds() / 1e9)
	}
}

// WriteTextfile writes all metrics gathered by g to path in the Prometheus
// text exposition format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
