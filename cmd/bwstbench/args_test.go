package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArgs() []string {
	return []string{
		"corpus.bin", "attrs.csv", "queries.bin", "ranges.csv", "gt.ivecs",
		"32", "64", "1.2", "256", "4",
		"10", "[50,100,200]", "0",
	}
}

func TestParseArgsValid(t *testing.T) {
	cfg, err := parseArgs(validArgs())
	require.NoError(t, err)

	assert.Equal(t, "corpus.bin", cfg.corpusPath)
	assert.Equal(t, 32, cfg.r)
	assert.Equal(t, 64, cfg.l)
	assert.InDelta(t, 1.2, cfg.alpha, 1e-9)
	assert.Equal(t, 256, cfg.cutoff)
	assert.Equal(t, 4, cfg.splitFactor)
	assert.Equal(t, 10, cfg.k)
	assert.Equal(t, []int{50, 100, 200}, cfg.lSearches)
	assert.Equal(t, 0, cfg.threads)
}

func TestParseArgsWrongCount(t *testing.T) {
	_, err := parseArgs([]string{"only-one-arg"})
	assert.Error(t, err)
}

func TestParseArgsBadNumber(t *testing.T) {
	args := validArgs()
	args[5] = "not-a-number"
	_, err := parseArgs(args)
	assert.Error(t, err)
}

func TestParseLSearchListUnbracketed(t *testing.T) {
	got, err := parseLSearchList("10, 20,30")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestParseLSearchListEmpty(t *testing.T) {
	_, err := parseLSearchList("")
	assert.Error(t, err)
}
