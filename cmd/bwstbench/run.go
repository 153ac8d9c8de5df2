package main

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/hupe1980/bwst"
	"github.com/hupe1980/bwst/internal/objectstore"
	"github.com/hupe1980/bwst/internal/procstat"
	"github.com/hupe1980/bwst/internal/resource"
	"github.com/hupe1980/bwst/model"
)

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	store := objectstore.NewLocalStore("")

	corpus, corpusDim, err := objectstore.ReadVectors(store, cfg.corpusPath)
	if err != nil {
		return err
	}
	attrs, err := objectstore.ReadAttributes(store, cfg.attrsPath)
	if err != nil {
		return err
	}
	queries, queryDim, err := objectstore.ReadVectors(store, cfg.queriesPath)
	if err != nil {
		return err
	}
	ranges, err := objectstore.ReadRanges(store, cfg.rangesPath)
	if err != nil {
		return err
	}
	groundTruth, err := objectstore.ReadGroundTruth(store, cfg.gtPath)
	if err != nil {
		return err
	}

	if queryDim != corpusDim {
		return &bwst.InputShapeError{What: "query dimension", Expected: corpusDim, Got: queryDim}
	}
	if len(ranges) != len(queries) {
		return &bwst.InputShapeError{What: "query-range count", Expected: len(queries), Got: len(ranges)}
	}
	if len(groundTruth) != len(queries) {
		return &bwst.InputShapeError{What: "ground-truth record count", Expected: len(queries), Got: len(groundTruth)}
	}

	workers := cfg.threads
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	buildSampler := &procstat.MaxSampler{}
	stopBuildSampling := sampleThreadsInBackground(buildSampler)
	buildStart := time.Now()

	idx, err := bwst.Build(context.Background(), corpus, attrs,
		bwst.WithR(cfg.r),
		bwst.WithBuildL(cfg.l),
		bwst.WithAlpha(float32(cfg.alpha)),
		bwst.WithCutoff(cfg.cutoff),
		bwst.WithSplitFactor(cfg.splitFactor),
		bwst.WithWorkers(workers),
	)
	buildElapsed := time.Since(buildStart)
	stopBuildSampling()
	if err != nil {
		return err
	}
	defer idx.Close()

	buildPeakRSS := procstat.PeakRSSBytes()

	fmt.Printf("peak RSS (build): %d bytes\n", buildPeakRSS)

	querySampler := &procstat.MaxSampler{}
	stopQuerySampling := sampleThreadsInBackground(querySampler)

	sort.Ints(cfg.lSearches)
	results := make([]lSearchResult, len(cfg.lSearches))
	for i, lSearch := range cfg.lSearches {
		res, err := benchmarkLSearch(idx, queries, ranges, groundTruth, cfg.k, lSearch, workers)
		if err != nil {
			stopQuerySampling()
			return err
		}
		results[i] = res
	}

	stopQuerySampling()
	queryPeakRSS := procstat.PeakRSSBytes()

	fmt.Printf("peak RSS (query): %d bytes\n", queryPeakRSS)
	fmt.Printf("max threads (build): %d\n", buildSampler.Max())
	fmt.Printf("max threads (query): %d\n", querySampler.Max())
	fmt.Printf("build time: %.6f s\n", buildElapsed.Seconds())

	for _, r := range results {
		fmt.Printf("L_search: %d QPS: %.4f Recall: %.4f\n", r.lSearch, r.qps, r.recall)
	}

	return nil
}

// sampleThreadsInBackground polls procstat.ThreadCount at a short
// interval and feeds sampler until the returned stop function is
// called, the way a benchmark driver tracks a running max across a
// phase without instrumenting every call site.
func sampleThreadsInBackground(sampler *procstat.MaxSampler) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				sampler.Sample(procstat.ThreadCount())
			}
		}
	}()
	return func() { close(done) }
}

type lSearchResult struct {
	lSearch int
	qps     float64
	recall  float64
}

func benchmarkLSearch(idx *bwst.Index, queries [][]float32, ranges [][2]float64, groundTruth [][]int, k, lSearch, workers int) (lSearchResult, error) {
	nq := len(queries)
	recalls := make([]float64, nq)

	pool := resource.NewPool(workers)
	tasks := make([]func(ctx context.Context) error, nq)
	for i := range queries {
		i := i
		tasks[i] = func(ctx context.Context) error {
			res, err := idx.Query(ctx, queries[i], ranges[i][0], ranges[i][1], k, bwst.WithBeamSize(lSearch))
			if err != nil {
				return err
			}
			recalls[i] = recallAt(res, groundTruth[i], k)
			return nil
		}
	}

	start := time.Now()
	if err := pool.Run(context.Background(), tasks); err != nil {
		return lSearchResult{}, err
	}
	elapsed := time.Since(start)

	var total float64
	for _, r := range recalls {
		total += r
	}
	avgRecall := 0.0
	if nq > 0 {
		avgRecall = total / float64(nq)
	}

	qps := 0.0
	if elapsed > 0 {
		qps = float64(nq) / elapsed.Seconds()
	}

	return lSearchResult{lSearch: lSearch, qps: qps, recall: avgRecall}, nil
}

// recallAt computes the fraction of the first k ground-truth neighbor
// ids present among results, matching §7's InsufficientResults rule:
// the denominator is always k, so a short result list from a
// small-bucket query is penalized rather than silently excluded.
func recallAt(results []model.Result, groundTruth []int, k int) float64 {
	if k <= 0 {
		return 0
	}
	if len(groundTruth) > k {
		groundTruth = groundTruth[:k]
	}
	want := make(map[int]struct{}, len(groundTruth))
	for _, id := range groundTruth {
		want[id] = struct{}{}
	}

	hits := 0
	for _, r := range results {
		if _, ok := want[int(r.OID)]; ok {
			hits++
		}
	}
	return float64(hits) / float64(k)
}
