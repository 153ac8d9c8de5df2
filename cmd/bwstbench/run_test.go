package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bwst/testutil"
)

func writeVectorsFile(t *testing.T, path string, vectors [][]float32) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(vectors))))
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(dim)))
	for _, v := range vectors {
		for _, f := range v {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, math.Float32bits(f)))
		}
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func writeAttrsFile(t *testing.T, path string, attrs []float64) {
	t.Helper()
	var sb bytes.Buffer
	for _, a := range attrs {
		fmt.Fprintf(&sb, "%g\n", a)
	}
	require.NoError(t, os.WriteFile(path, sb.Bytes(), 0o644))
}

func writeRangesFile(t *testing.T, path string, ranges [][2]float64) {
	t.Helper()
	var sb bytes.Buffer
	for _, r := range ranges {
		fmt.Fprintf(&sb, "%g-%g\n", r[0], r[1])
	}
	require.NoError(t, os.WriteFile(path, sb.Bytes(), 0o644))
}

func writeGroundTruthFile(t *testing.T, path string, records [][]int) {
	t.Helper()
	var buf bytes.Buffer
	for _, rec := range records {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(len(rec))))
		for _, id := range rec {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(id)))
		}
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	rng := testutil.NewRNG(3)
	n, dim := 32, 4
	corpus := rng.UniformVectors(n, dim)
	attrs := testutil.SequentialAttributes(n)

	nq := 4
	queries := rng.UniformVectors(nq, dim)
	ranges := make([][2]float64, nq)
	gt := make([][]int, nq)
	k := 5
	for i := range queries {
		ranges[i] = [2]float64{0, float64(n)}
		brute := testutil.BruteForce(corpus, queries[i], k, nil)
		ids := make([]int, len(brute))
		for j, b := range brute {
			ids[j] = b.OID
		}
		gt[i] = ids
	}

	corpusPath := filepath.Join(dir, "corpus.bin")
	attrsPath := filepath.Join(dir, "attrs.csv")
	queriesPath := filepath.Join(dir, "queries.bin")
	rangesPath := filepath.Join(dir, "ranges.csv")
	gtPath := filepath.Join(dir, "gt.ivecs")

	writeVectorsFile(t, corpusPath, corpus)
	writeAttrsFile(t, attrsPath, attrs)
	writeVectorsFile(t, queriesPath, queries)
	writeRangesFile(t, rangesPath, ranges)
	writeGroundTruthFile(t, gtPath, gt)

	err := run([]string{
		corpusPath, attrsPath, queriesPath, rangesPath, gtPath,
		"8", "16", "1.2", "16", "2",
		fmt.Sprintf("%d", k), "[16,32]", "1",
	})
	require.NoError(t, err)
}

func TestRunRejectsBadArgCount(t *testing.T) {
	err := run([]string{"too", "few"})
	require.Error(t, err)
}
