// Package tests holds reusable contract suites for port implementations.
package tests

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/ghostmap/pkg/domain"
	"github.com/aretw0/ghostmap/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache
// implementation adheres to the interface contract.
func RunResultCacheContract(t *testing.T, cache ports.ResultCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405.000000")

	t.Run("Set and Get", func(t *testing.T) {
		key := prefix + ":single"
		require.NoError(t, cache.Set(ctx, key, "21409"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "21409", got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, prefix+":missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + ":ghosts"
		require.NoError(t, cache.Set(ctx, key, "1"))
		require.NoError(t, cache.Set(ctx, key, "21165830176709"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "21165830176709", got)
	})

	t.Run("Concurrent Writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := fmt.Sprintf("%s:worker-%d", prefix, i)
				assert.NoError(t, cache.Set(ctx, key, fmt.Sprint(i)))
			}()
		}
		wg.Wait()

		for i := range 8 {
			got, err := cache.Get(ctx, fmt.Sprintf("%s:worker-%d", prefix, i))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprint(i), got)
		}
	})
}
