package snowflake_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dutchghostwriter/backend/pkg/snowflake"
)

// These tests share the package-level node and must not run in parallel.

func TestInit_NodeRange(t *testing.T) {
	for _, node := range []int64{0, 1, 1023} {
		require.NoError(t, snowflake.Init(node), "node %d", node)
	}
	for _, node := range []int64{-1, 1024} {
		require.Error(t, snowflake.Init(node), "node %d", node)
	}
	require.NoError(t, snowflake.Init(1))
}

func TestNextID_IncreasesAndStaysPositive(t *testing.T) {
	require.NoError(t, snowflake.Init(1))

	prev := snowflake.NextID()
	require.Positive(t, prev)
	for i := 0; i < 2000; i++ {
		id := snowflake.NextID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestNextID_UniqueAcrossGoroutines(t *testing.T) {
	require.NoError(t, snowflake.Init(1))

	const workers, perWorker = 8, 500
	results := make(chan []int64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, perWorker)
			for i := range ids {
				ids[i] = snowflake.NextID()
			}
			results <- ids
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, workers*perWorker)
	for ids := range results {
		for _, id := range ids {
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %d", id)
			seen[id] = struct{}{}
		}
	}
	require.Len(t, seen, workers*perWorker)
}
