package cache

import (
	"context"
	"sync"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetPut(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_, err := c.Get(ctx, "empresas", ListingKey(0, 5))
	assert.ErrorIs(t, err, ErrCacheMiss)

	payload := []byte(`{"total":1}`)
	require.NoError(t, c.Put(ctx, "empresas", ListingKey(0, 5), 0, payload))
	payload[0] = 'X'

	got, err := c.Get(ctx, "empresas", ListingKey(0, 5))
	require.NoError(t, err)
	assert.Equal(t, `{"total":1}`, string(got), "stored data is copied")

	_, err = c.Get(ctx, "empresas", ListingKey(1, 5))
	assert.ErrorIs(t, err, ErrCacheMiss, "pages never alias")
}

func TestMemoryEvictAllIsPerKind(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "empresas", ListingKey(0, 5), 0, []byte("a")))
	require.NoError(t, c.Put(ctx, "empresas", ListingKey(1, 5), 0, []byte("b")))
	require.NoError(t, c.Put(ctx, "contratos", ListingKey(0, 5), 0, []byte("c")))

	before := promtest.ToFloat64(CacheEvictions.WithLabelValues("empresas"))
	require.NoError(t, c.EvictAll(ctx, "empresas"))
	assert.Equal(t, before+1, promtest.ToFloat64(CacheEvictions.WithLabelValues("empresas")))

	assert.Zero(t, c.Len("empresas"))
	assert.Equal(t, 1, c.Len("contratos"))

	// Evicting an empty namespace is fine.
	assert.NoError(t, c.EvictAll(ctx, "usuarios"))
}

func TestMemoryPutAfterEvictionIsStale(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	gen, err := c.Generation(ctx, "empresas")
	require.NoError(t, err)

	require.NoError(t, c.EvictAll(ctx, "empresas"))

	stale := promtest.ToFloat64(CacheStalePuts.WithLabelValues("empresas"))
	err = c.Put(ctx, "empresas", ListingKey(0, 5), gen, []byte("old"))
	assert.ErrorIs(t, err, ErrStaleGeneration)
	assert.Equal(t, stale+1, promtest.ToFloat64(CacheStalePuts.WithLabelValues("empresas")))

	_, err = c.Get(ctx, "empresas", ListingKey(0, 5))
	assert.ErrorIs(t, err, ErrCacheMiss)

	current, err := c.Generation(ctx, "empresas")
	require.NoError(t, err)
	assert.Equal(t, gen+1, current)
	require.NoError(t, c.Put(ctx, "empresas", ListingKey(0, 5), current, []byte("new")))

	other, err := c.Generation(ctx, "contratos")
	require.NoError(t, err)
	assert.Zero(t, other, "generations are per kind")
}

func TestMemoryCountsHitsAndMisses(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	hits := promtest.ToFloat64(CacheHits.WithLabelValues("servicos"))
	misses := promtest.ToFloat64(CacheMisses.WithLabelValues("servicos"))

	_, _ = c.Get(ctx, "servicos", "k")
	require.NoError(t, c.Put(ctx, "servicos", "k", 0, []byte("v")))
	_, _ = c.Get(ctx, "servicos", "k")

	assert.Equal(t, hits+1, promtest.ToFloat64(CacheHits.WithLabelValues("servicos")))
	assert.Equal(t, misses+1, promtest.ToFloat64(CacheMisses.WithLabelValues("servicos")))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := ListingKey(i%4, 5)
			_ = c.Put(ctx, "exibicoes", key, 0, []byte("x"))
			_, _ = c.Get(ctx, "exibicoes", key)
			if i%5 == 0 {
				_ = c.EvictAll(ctx, "exibicoes")
			}
		}(i)
	}
	wg.Wait()
}

func TestNewRedisPanicsOnNilClient(t *testing.T) {
	assert.Panics(t, func() { NewRedis(nil, "ocean") })
}
