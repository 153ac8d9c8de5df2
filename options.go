package bwst

import (
	"log/slog"

	"github.com/hupe1980/bwst/internal/vamana"
)

// buildOptions collects Build's configuration, filled in from
// DefaultOptions and any Option functions the caller passes.
type buildOptions struct {
	splitFactor      int
	cutoff           int
	vamana           vamana.Options
	workers          int
	queryRateLimit   float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Build. Breaking changes are expected while bwst is
// pre-release.
type Option func(*buildOptions)

// WithSplitFactor sets the number of child buckets per B-WST parent
// (§3, §4.D). Default 4.
func WithSplitFactor(splitFactor int) Option {
	return func(o *buildOptions) { o.splitFactor = splitFactor }
}

// WithCutoff sets the maximum leaf bucket size (§3, §4.D). Default 1024.
func WithCutoff(cutoff int) Option {
	return func(o *buildOptions) { o.cutoff = cutoff }
}

// WithR sets the maximum proximity-graph out-degree (§4.B). Default 64.
func WithR(r int) Option {
	return func(o *buildOptions) { o.vamana.R = r }
}

// WithBuildL sets the build-time candidate beam width (§4.B). Default 100.
func WithBuildL(l int) Option {
	return func(o *buildOptions) { o.vamana.L = l }
}

// WithAlpha sets the RobustPrune diversity slack, alpha >= 1.0 (§4.B).
// Default 1.2.
func WithAlpha(alpha float32) Option {
	return func(o *buildOptions) { o.vamana.Alpha = alpha }
}

// WithPasses sets the number of node-loop passes Build runs per bucket
// (§4.B). Default 2.
func WithPasses(passes int) Option {
	return func(o *buildOptions) { o.vamana.Passes = passes }
}

// WithSeed sets the RNG seed every source of randomness in Build derives
// from, for deterministic, repeatable builds (§5, §8).
func WithSeed(seed int64) Option {
	return func(o *buildOptions) { o.vamana.Seed = seed }
}

// WithWorkers bounds how many bucket graphs build concurrently. <= 0
// means 1; pass runtime.NumCPU() for "auto-detect" (§6 threads=0).
func WithWorkers(workers int) Option {
	return func(o *buildOptions) { o.workers = workers }
}

// WithQueryRateLimit paces every subsequent Index.Query call to at most
// qps queries per second (golang.org/x/time/rate under the hood, via
// internal/resource.Pacer). qps <= 0 (the default) leaves queries
// unpaced. Intended for library callers driving a steady benchmark load
// against a shared Index rather than for the one-shot CLI driver, which
// measures achieved QPS rather than targeting one.
func WithQueryRateLimit(qps float64) Option {
	return func(o *buildOptions) { o.queryRateLimit = qps }
}

// WithMetricsCollector configures a metrics collector for Build and
// subsequent Query calls. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *buildOptions) { o.metricsCollector = mc }
}

// WithLogger configures structured logging for Build and Query. Pass nil
// to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *buildOptions) { o.logger = logger }
}

// WithLogLevel is a convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *buildOptions) { o.logger = NewTextLogger(level) }
}

// DefaultOptions returns the conventional Vamana/B-WST construction
// parameters (§4.B, §4.D).
func DefaultOptions() []Option {
	return []Option{
		WithSplitFactor(4),
		WithCutoff(1024),
		WithR(64),
		WithBuildL(100),
		WithAlpha(1.2),
		WithPasses(2),
		WithSeed(42),
	}
}

func applyOptions(optFns []Option) buildOptions {
	o := buildOptions{
		splitFactor:      4,
		cutoff:           1024,
		vamana:           vamana.DefaultOptions(),
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// queryOptions collects Query's per-call configuration.
type queryOptions struct {
	params   vamana.SearchParams
	parallel bool
}

// QueryOption configures a single Query call.
type QueryOption func(*queryOptions)

// WithBeamSize sets the query-time beam width L_s (§4.B). Default 100.
func WithBeamSize(beamSize int) QueryOption {
	return func(o *queryOptions) { o.params.BeamSize = beamSize }
}

// WithCut sets the frontier admission ratio (§4.B). Default 1.35.
func WithCut(cut float32) QueryOption {
	return func(o *queryOptions) { o.params.Cut = cut }
}

// WithVisitLimit caps the total number of nodes a single bucket's beam
// search may visit. Zero means unbounded.
func WithVisitLimit(limit int) QueryOption {
	return func(o *queryOptions) { o.params.Limit = limit }
}

// WithParallelBuckets dispatches sibling-bucket beam searches (when the
// covering range spans more than one bucket) across goroutines instead of
// sequentially. §5 notes the canonical benchmark does not do this;
// callers that want it opt in explicitly.
func WithParallelBuckets(parallel bool) QueryOption {
	return func(o *queryOptions) { o.parallel = parallel }
}

func applyQueryOptions(optFns []QueryOption) queryOptions {
	o := queryOptions{params: vamana.DefaultSearchParams(100)}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
