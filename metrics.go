package bwst

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operational metrics from Build and Query.
// Implement this to integrate with an external monitoring system.
type MetricsCollector interface {
	// RecordBuild is called once after the full B-WST build completes.
	RecordBuild(n, levels int, duration time.Duration, err error)

	// RecordBucketBuild is called after each bucket's proximity graph
	// build, across every level.
	RecordBucketBuild(level, size int, duration time.Duration)

	// RecordQuery is called after each Query call. visited is the total
	// number of beam-search-visited nodes across every bucket searched.
	RecordQuery(k, resultsFound, visited int, duration time.Duration, err error)
}

// NoopMetricsCollector discards every metric. It is the default.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordBucketBuild(int, int, time.Duration)     {}
func (NoopMetricsCollector) RecordQuery(int, int, int, time.Duration, error) {}

// BasicMetricsCollector accumulates simple in-memory counters, useful for
// debugging without wiring an external system.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	BucketBuildCount atomic.Int64
	QueryCount       atomic.Int64
	QueryErrors      atomic.Int64
	QueryTotalNanos  atomic.Int64
	VisitedTotal     atomic.Int64
	ResultsTotal     atomic.Int64
}

func (b *BasicMetricsCollector) RecordBuild(n, levels int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

func (b *BasicMetricsCollector) RecordBucketBuild(level, size int, duration time.Duration) {
	b.BucketBuildCount.Add(1)
}

func (b *BasicMetricsCollector) RecordQuery(k, resultsFound, visited int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	b.VisitedTotal.Add(int64(visited))
	b.ResultsTotal.Add(int64(resultsFound))
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildErrors      int64
	BuildAvgNanos    int64
	BucketBuildCount int64
	QueryCount       int64
	QueryErrors      int64
	QueryAvgNanos    int64
	AvgVisitedPerQry float64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	queryCount := b.QueryCount.Load()
	var avgVisited float64
	if queryCount > 0 {
		avgVisited = float64(b.VisitedTotal.Load()) / float64(queryCount)
	}
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		BuildAvgNanos:    avgNanos(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		BucketBuildCount: b.BucketBuildCount.Load(),
		QueryCount:       queryCount,
		QueryErrors:      b.QueryErrors.Load(),
		QueryAvgNanos:    avgNanos(b.QueryTotalNanos.Load(), queryCount),
		AvgVisitedPerQry: avgVisited,
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
