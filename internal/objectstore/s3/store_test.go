package s3

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bwst"
	"github.com/hupe1980/bwst/internal/objectstore"
)

// TestIntegration_BuildFromSources mirrors the teacher's
// TestIntegration_S3Store: skipped unless S3_BUCKET names a real bucket
// holding the benchmark fixtures, since it exercises the real AWS SDK
// config resolution and network I/O that unit tests must not depend on.
func TestIntegration_BuildFromSources(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	store, err := NewStoreFromEnv(ctx, bucket, os.Getenv("S3_PREFIX"))
	require.NoError(t, err)

	blobs := AsBlobStore(store)
	points := objectstore.NewPointSource(blobs, "corpus.bin")
	attrs := objectstore.NewAttributeSource(blobs, "attrs.csv")
	defer points.Close()
	defer attrs.Close()

	idx, err := bwst.BuildFromSources(ctx, points, attrs, bwst.WithCutoff(64))
	require.NoError(t, err)
	defer idx.Close()

	require.Greater(t, idx.Len(), 0)
}
