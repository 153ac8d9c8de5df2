package objectstore

// Result is one row of the benchmark driver's output (§6): the recall
// list search width, achieved throughput, and recall@k for that width.
type Result struct {
	LSearch int
	QPS     float64
	Recall  float64
}

// ResultSink is the supplemental export path SPEC_FULL.md adds for
// benchmark results beyond the required stdout lines — e.g. a
// DynamoDB-backed sink (see the ddb subpackage) for tracking results
// across runs. The CLI driver does not write to any ResultSink; it only
// prints the required stdout lines.
type ResultSink interface {
	PutResult(runID string, r Result) error
}

// NoopResultSink discards results.
type NoopResultSink struct{}

func (NoopResultSink) PutResult(string, Result) error { return nil }

var _ ResultSink = NoopResultSink{}
