package bwst

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bwst-specific structured-field helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that emits JSON-formatted records.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that emits human-readable text records.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithN attaches a corpus-size field.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{Logger: l.Logger.With("n", n)}
}

// WithDim attaches a dimension field.
func (l *Logger) WithDim(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dim", dim)}
}

// WithLevel attaches a tree-level field.
func (l *Logger) WithLevel(level int) *Logger {
	return &Logger{Logger: l.Logger.With("level", level)}
}

// WithBucket attaches a bucket-index field.
func (l *Logger) WithBucket(bucket int) *Logger {
	return &Logger{Logger: l.Logger.With("bucket", bucket)}
}

// WithK attaches a neighbor-count field.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogBuild logs the outcome of a full B-WST build.
func (l *Logger) LogBuild(ctx context.Context, n, dim, levels int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed", "n", n, "dim", dim, "error", err)
		return
	}
	l.InfoContext(ctx, "build completed", "n", n, "dim", dim, "levels", levels)
}

// LogBucketBuild logs the completion of a single bucket's proximity
// graph build.
func (l *Logger) LogBucketBuild(ctx context.Context, level, bucket, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bucket graph build failed", "level", level, "bucket", bucket, "size", size, "error", err)
		return
	}
	l.DebugContext(ctx, "bucket graph built", "level", level, "bucket", bucket, "size", size)
}

// LogQuery logs the outcome of a range-filtered query.
func (l *Logger) LogQuery(ctx context.Context, k, level, bucketsSearched, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed", "k", k, "error", err)
		return
	}
	l.DebugContext(ctx, "query completed", "k", k, "level", level, "buckets_searched", bucketsSearched, "results", resultsFound)
}
