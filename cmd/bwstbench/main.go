// Command bwstbench is a thin CLI driver over the bwst core: it builds
// an index from corpus/attribute files, sweeps a list of query-time
// beam widths against a query/range/ground-truth fixture, and prints
// timing, thread, and recall telemetry.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bwstbench: %v\n", err)
		os.Exit(1)
	}
}
