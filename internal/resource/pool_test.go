package resource

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(4)
	var count atomic.Int64
	tasks := make([]func(ctx context.Context) error, 50)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			count.Add(1)
			return nil
		}
	}

	require.NoError(t, pool.Run(context.Background(), tasks))
	assert.Equal(t, int64(50), count.Load())
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(2)
	var current, maxSeen atomic.Int64

	tasks := make([]func(ctx context.Context) error, 20)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			n := current.Add(1)
			for {
				prev := maxSeen.Load()
				if n <= prev || maxSeen.CompareAndSwap(prev, n) {
					break
				}
			}
			current.Add(-1)
			return nil
		}
	}

	require.NoError(t, pool.Run(context.Background(), tasks))
	assert.LessOrEqual(t, maxSeen.Load(), int64(2))
}

func TestPoolPropagatesError(t *testing.T) {
	pool := NewPool(4)
	boom := assertError("boom")
	tasks := []func(ctx context.Context) error{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
	}
	err := pool.Run(context.Background(), tasks)
	assert.Error(t, err)
}

type assertError string

func (e assertError) Error() string { return string(e) }
