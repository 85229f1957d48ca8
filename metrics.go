package nearpoint

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the observability package).
type MetricsCollector interface {
	// RecordSearch is called after each search.
	// candidates is the number of points scanned, err is nil if successful.
	RecordSearch(candidates int, duration time.Duration, err error)

	// RecordRun is called after a benchmark run of repeats searches over points.
	RecordRun(points, repeats int, elapsed time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	PointsScanned    atomic.Int64
	RunCount         atomic.Int64
	RunTotalNanos    atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(candidates int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.PointsScanned.Add(int64(candidates))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, repeats int, elapsed time.Duration) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(elapsed.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		PointsScanned:  b.PointsScanned.Load(),
		RunCount:       b.RunCount.Load(),
		RunTotalNanos:  b.RunTotalNanos.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	PointsScanned  int64
	RunCount       int64
	RunTotalNanos  int64
}
