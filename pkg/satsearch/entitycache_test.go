package satsearch_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

func TestEntityCache_GetOrAdd(t *testing.T) {
	t.Parallel()

	cache := satsearch.NewEntityCache()
	id := uuid.New()
	calls := 0
	factory := func() (satsearch.Entity, error) {
		calls++
		return &satsearch.Supplier{Thing: satsearch.Thing{UUID: id, Name: "Acme"}}, nil
	}

	first, err := cache.GetOrAdd(id, factory)
	require.NoError(t, err)
	second, err := cache.GetOrAdd(id, factory)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
}

func TestEntityCache_GetOrAdd_FactoryError(t *testing.T) {
	t.Parallel()

	cache := satsearch.NewEntityCache()
	id := uuid.New()
	boom := errors.New("boom")

	e, err := cache.GetOrAdd(id, func() (satsearch.Entity, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	assert.Nil(t, e)

	_, ok := cache.Get(id)
	assert.False(t, ok, "failed fetches are not cached")
}

func TestEntityCache_GetOrAdd_KeysByDecodedID(t *testing.T) {
	t.Parallel()

	cache := satsearch.NewEntityCache()
	requested := uuid.New()
	canonical := uuid.New()

	e, err := cache.GetOrAdd(requested, func() (satsearch.Entity, error) {
		return &satsearch.Supplier{Thing: satsearch.Thing{UUID: canonical}}, nil
	})
	require.NoError(t, err)

	got, ok := cache.Get(canonical)
	require.True(t, ok)
	assert.Same(t, e, got)

	_, ok = cache.Get(requested)
	assert.False(t, ok)
}

func TestEntityCache_AddAndGet(t *testing.T) {
	t.Parallel()

	cache := satsearch.NewEntityCache()
	p := &satsearch.Product{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Wheel"}}
	cache.Add(p)

	got, ok := cache.Get(p.UUID)
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = cache.Get(uuid.New())
	assert.False(t, ok)
}

func TestEntityCache_ConcurrentMisses(t *testing.T) {
	t.Parallel()

	cache := satsearch.NewEntityCache()
	id := uuid.New()
	var calls atomic.Int32

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := cache.GetOrAdd(id, func() (satsearch.Entity, error) {
				calls.Add(1)
				return &satsearch.Supplier{Thing: satsearch.Thing{UUID: id}}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, id, e.ID())
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	assert.Equal(t, 1, cache.Len())
}

func TestEntityCache_RecordsHitsAndMisses(t *testing.T) {
	cache := satsearch.NewEntityCache()
	id := uuid.New()
	factory := func() (satsearch.Entity, error) {
		return &satsearch.Product{Thing: satsearch.Thing{UUID: id}}, nil
	}

	hitsBefore := ptestutil.ToFloat64(metrics.EntityCacheHitsTotal)
	missesBefore := ptestutil.ToFloat64(metrics.EntityCacheMissesTotal)

	_, err := cache.GetOrAdd(id, factory)
	require.NoError(t, err)
	_, err = cache.GetOrAdd(id, factory)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.EntityCacheHitsTotal)-hitsBefore, 1.0)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.EntityCacheMissesTotal)-missesBefore, 1.0)
}
