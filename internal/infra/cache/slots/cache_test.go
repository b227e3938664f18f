package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

func newCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl), mr
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	_, ok, err := cache.Get(ctx, 1, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	slots := []domain.BookedSlot{{Date: date, Hour: 9, Status: domain.StatusWaiting}}
	require.NoError(t, cache.Set(ctx, 1, 0, nil, slots))

	got, ok, err := cache.Get(ctx, 1, domain.ActiveStatuses)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, slots, got)

	_, ok, err = cache.Get(ctx, 1, []domain.BookingStatus{domain.StatusCompleted})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_StatusOrderDoesNotMatter(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0,
		[]domain.BookingStatus{domain.StatusCompleted, domain.StatusWaiting}, []domain.BookedSlot{}))

	_, ok, err := cache.Get(ctx, 1, []domain.BookingStatus{domain.StatusWaiting, domain.StatusCompleted})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	cache, mr := newCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0, nil, []domain.BookedSlot{}))
	require.NoError(t, cache.Set(ctx, 2, 0, nil, []domain.BookedSlot{}))

	require.NoError(t, cache.Invalidate(ctx, 1))

	assert.False(t, mr.Exists(key(1)))
	assert.True(t, mr.Exists(key(2)))
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 0, nil, []domain.BookedSlot{}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 1, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	ctx := context.Background()

	for _, cache := range []*Cache{nil, NewCache(nil, time.Minute)} {
		gen, err := cache.Generation(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, gen)
		require.NoError(t, cache.Set(ctx, 1, 0, nil, nil))
		require.NoError(t, cache.Invalidate(ctx, 1))
		_, ok, err := cache.Get(ctx, 1, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestCache_RedisDown(t *testing.T) {
	cache, mr := newCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_InvalidateBumpsGeneration(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, gen)

	require.NoError(t, cache.Invalidate(ctx, 1, 2))

	gen, err = cache.Generation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	gen, err = cache.Generation(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, gen)
}

func TestCache_SetSkipsSlotsReadBeforeInvalidate(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	// читатель запомнил поколение, затем запись бронирования сбросила кэш
	gen, err := cache.Generation(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx, 1))

	stale := []domain.BookedSlot{}
	require.NoError(t, cache.Set(ctx, 1, gen, nil, stale))

	_, ok, err := cache.Get(ctx, 1, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// с актуальным поколением запись проходит
	gen, err = cache.Generation(ctx, 1)
	require.NoError(t, err)
	fresh := []domain.BookedSlot{{Date: date, Hour: 9, Status: domain.StatusWaiting}}
	require.NoError(t, cache.Set(ctx, 1, gen, nil, fresh))

	got, ok, err := cache.Get(ctx, 1, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fresh, got)
}
