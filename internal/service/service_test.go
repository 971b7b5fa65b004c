package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"

	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryListCache is a ListCache kept in process memory.
type memoryListCache struct {
	mu          sync.Mutex
	generations map[entity.Kind]int64
	entries     map[string][]byte
	failGen     bool
}

func newMemoryListCache() *memoryListCache {
	return &memoryListCache{
		generations: make(map[entity.Kind]int64),
		entries:     make(map[string][]byte),
	}
}

func (c *memoryListCache) Generation(ctx context.Context, kind entity.Kind) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGen {
		return 0, errors.New("redis down")
	}
	return c.generations[kind], nil
}

func (c *memoryListCache) Get(ctx context.Context, kind entity.Kind, generation int64, scope string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[listKey(kind, generation, scope)]
	return payload, ok, nil
}

func (c *memoryListCache) Set(ctx context.Context, kind entity.Kind, generation int64, scope string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[listKey(kind, generation, scope)] = payload
	return nil
}

func (c *memoryListCache) Invalidate(ctx context.Context, kind entity.Kind, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[kind]++
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCachedList_HitUntilInvalidated(t *testing.T) {
	cache := newMemoryListCache()
	log := quietLogger()
	calls := 0
	fetch := func(ctx context.Context) ([]entity.Shift, error) {
		calls++
		return []entity.Shift{{ID: "sh" + strconv.Itoa(calls)}}, nil
	}

	ctx := context.Background()
	first, err := CachedList(ctx, cache, log, entity.KindShift, "public", fetch)
	require.NoError(t, err)
	second, err := CachedList(ctx, cache, log, entity.KindShift, "public", fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	require.NoError(t, InvalidateList(ctx, cache, entity.KindShift, "sh1"))
	third, err := CachedList(ctx, cache, log, entity.KindShift, "public", fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "sh2", third[0].ID)
}

func TestCachedList_KeepsPopulatedReferences(t *testing.T) {
	cache := newMemoryListCache()
	reg := entity.WorkShiftRegistration{
		ID:      "w1",
		StaffID: entity.Ref{ID: "st1", Name: "Minh", Phone: "0901234567"},
		ShiftID: entity.Ref{ID: "sh1", ShiftType: "Ca sáng", Date: "2025-06-11", StartTime: "08:00", EndTime: "12:00"},
		Status:  entity.RegistrationStatusPending,
	}
	fetch := func(ctx context.Context) ([]entity.WorkShiftRegistration, error) {
		return []entity.WorkShiftRegistration{reg}, nil
	}

	ctx := context.Background()
	_, err := CachedList(ctx, cache, quietLogger(), entity.KindWorkShift, "staff", fetch)
	require.NoError(t, err)
	cached, err := CachedList(ctx, cache, quietLogger(), entity.KindWorkShift, "staff", func(ctx context.Context) ([]entity.WorkShiftRegistration, error) {
		return nil, errors.New("should be served from cache")
	})
	require.NoError(t, err)

	require.Len(t, cached, 1)
	assert.Equal(t, reg, cached[0])
}

func TestCachedList_NilCacheAlwaysFetches(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]entity.Shift, error) {
		calls++
		return nil, nil
	}

	for i := 0; i < 3; i++ {
		_, err := CachedList[entity.Shift](context.Background(), nil, quietLogger(), entity.KindShift, "public", fetch)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
	assert.NoError(t, InvalidateList(context.Background(), nil, entity.KindShift, ""))
}

func TestCachedList_CacheFailureFallsBackToFetch(t *testing.T) {
	cache := newMemoryListCache()
	cache.failGen = true
	calls := 0
	fetch := func(ctx context.Context) ([]entity.Shift, error) {
		calls++
		return []entity.Shift{{ID: "sh1"}}, nil
	}

	items, err := CachedList(context.Background(), cache, quietLogger(), entity.KindShift, "public", fetch)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, calls)
}

func TestCachedList_FetchErrorIsNotCached(t *testing.T) {
	cache := newMemoryListCache()
	boom := errors.New("boom")

	_, err := CachedList(context.Background(), cache, quietLogger(), entity.KindShift, "public", func(ctx context.Context) ([]entity.Shift, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, cache.entries)
}

func TestCallerScope(t *testing.T) {
	assert.Equal(t, "public", CallerScope(context.Background()))

	a := CallerScope(backend.WithToken(context.Background(), "token-a"))
	b := CallerScope(backend.WithToken(context.Background(), "token-b"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CallerScope(backend.WithToken(context.Background(), "token-a")))
}

func TestInFlightGuard(t *testing.T) {
	guard := NewInFlightGuard()

	release, err := guard.Acquire("admin-1", "apt-1")
	require.NoError(t, err)

	_, err = guard.Acquire("admin-1", "apt-1")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	otherActor, err := guard.Acquire("admin-2", "apt-1")
	require.NoError(t, err)
	otherActor()

	release()
	release()

	again, err := guard.Acquire("admin-1", "apt-1")
	require.NoError(t, err)
	again()
}
