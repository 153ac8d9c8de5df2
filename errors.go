package bwst

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bwst/model"
)

// ErrInvalidK is returned when k is not positive.
var ErrInvalidK = errors.New("bwst: k must be positive")

// ErrInvalidRange is returned when a query's lo > hi.
var ErrInvalidRange = errors.New("bwst: lo must be <= hi")

// ErrEmptyCorpus is returned by Build when the corpus has zero points.
var ErrEmptyCorpus = errors.New("bwst: corpus has zero points")

// ErrDimensionMismatch reports a vector whose length disagrees with the
// corpus dimension (§4.A: "dimension mismatch between corpus and query is
// fatal"). This is an alias of model.DimensionMismatchError so callers
// across package boundaries can errors.As against one type.
type ErrDimensionMismatch = model.DimensionMismatchError

// InputShapeError is the §7 taxonomy's fatal-at-startup class: corpus and
// attribute counts that disagree, or a query file whose dimension does
// not match the corpus.
type InputShapeError struct {
	What     string // e.g. "attribute count", "query dimension"
	Expected int
	Got      int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("bwst: input shape error: %s: expected %d, got %d", e.What, e.Expected, e.Got)
}

// ParseError is the §7 taxonomy's malformed-line class: a CSV attribute
// or range line that does not parse as the expected number of floats.
// Line is 1-based. This is an alias of model.ParseError so objectstore's
// loaders can construct it without importing this package.
type ParseError = model.ParseError

// ArgError is the §7 taxonomy's CLI-argument class: a wrong argument
// count or an argument that fails to parse as the expected numeric type.
type ArgError struct {
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("bwst: argument error for %q: %v", e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }
