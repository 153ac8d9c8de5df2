package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/bwst"
)

// config is the parsed form of the 13 positional CLI arguments of §6.
type config struct {
	corpusPath  string
	attrsPath   string
	queriesPath string
	rangesPath  string
	gtPath      string

	r           int
	l           int
	alpha       float64
	cutoff      int
	splitFactor int

	k         int
	lSearches []int
	threads   int
}

const usage = "usage: bwstbench <corpus.bin> <attrs.csv> <queries.bin> <ranges.csv> <gt.ivecs> " +
	"<R> <L> <alpha> <cutoff> <split_factor> <k> <L_search_list> <threads>"

func parseArgs(args []string) (config, error) {
	const nargs = 13
	if len(args) != nargs {
		return config{}, &bwst.ArgError{Arg: "count", Err: fmt.Errorf("%s (got %d args, want %d)", usage, len(args), nargs)}
	}

	var cfg config
	cfg.corpusPath = args[0]
	cfg.attrsPath = args[1]
	cfg.queriesPath = args[2]
	cfg.rangesPath = args[3]
	cfg.gtPath = args[4]

	var err error
	if cfg.r, err = parseInt("R", args[5]); err != nil {
		return config{}, err
	}
	if cfg.l, err = parseInt("L", args[6]); err != nil {
		return config{}, err
	}
	if cfg.alpha, err = parseFloat("alpha", args[7]); err != nil {
		return config{}, err
	}
	if cfg.cutoff, err = parseInt("cutoff", args[8]); err != nil {
		return config{}, err
	}
	if cfg.splitFactor, err = parseInt("split_factor", args[9]); err != nil {
		return config{}, err
	}
	if cfg.k, err = parseInt("k", args[10]); err != nil {
		return config{}, err
	}
	if cfg.lSearches, err = parseLSearchList(args[11]); err != nil {
		return config{}, err
	}
	if cfg.threads, err = parseInt("threads", args[12]); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &bwst.ArgError{Arg: name, Err: err}
	}
	return v, nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &bwst.ArgError{Arg: name, Err: err}
	}
	return v, nil
}

// parseLSearchList parses a comma-separated, optionally "[...]"-bracketed
// list of beam widths, e.g. "50,100,200" or "[50,100,200]".
func parseLSearchList(raw string) ([]int, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	parts := strings.Split(trimmed, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, &bwst.ArgError{Arg: "L_search_list", Err: err}
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, &bwst.ArgError{Arg: "L_search_list", Err: fmt.Errorf("empty list")}
	}
	return out, nil
}
