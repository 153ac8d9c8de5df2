// Package procstat reports the process telemetry the benchmark driver
// prints alongside timing and recall: peak resident set size and the
// maximum thread count observed. Both are platform-specific probes with a
// portable fallback.
package procstat

import (
	"runtime"
	"runtime/pprof"
)

// PeakRSSBytes returns the process's peak resident set size in bytes, as
// reported by the OS. On platforms without a usable probe it returns 0.
func PeakRSSBytes() int64 {
	return peakRSSBytes()
}

// ThreadCount returns the current OS thread count backing the Go
// runtime, sampled via the threadcreate profile. It is a point-in-time
// read; callers tracking a maximum across a phase should poll and keep
// their own running max.
func ThreadCount() int {
	if p := pprof.Lookup("threadcreate"); p != nil {
		return p.Count()
	}
	return runtime.NumCPU()
}

// MaxSampler tracks the maximum value returned by repeated Sample calls,
// used to report "max thread count during build" and "max thread count
// during query" as required by the CLI surface.
type MaxSampler struct {
	max int
}

// Sample records a new observation and returns the running maximum.
func (s *MaxSampler) Sample(v int) int {
	if v > s.max {
		s.max = v
	}
	return s.max
}

// Max returns the running maximum observed so far.
func (s *MaxSampler) Max() int {
	return s.max
}
