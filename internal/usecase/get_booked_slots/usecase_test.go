package get_booked_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/internal/infra/cache/slots"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeBookings struct {
	calls    int
	statuses []domain.BookingStatus
	slots    []domain.BookedSlot
	err      error
	// onRead вызывается после чтения, имитируя запись, которая фиксируется в этот момент
	onRead func()
}

func (f *fakeBookings) GetBookedSlots(_ context.Context, _ int64, statuses []domain.BookingStatus) ([]domain.BookedSlot, error) {
	f.calls++
	f.statuses = statuses
	out := f.slots
	if f.onRead != nil {
		f.onRead()
	}
	return out, f.err
}

type fakeCapsters map[int64]*domain.Capster

func (f fakeCapsters) GetByID(_ context.Context, id int64) (*domain.Capster, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, capsterRepo.ErrCapsterNotFound
}

func newUseCase(t *testing.T, bookings *fakeBookings) *UseCase {
	uc, _ := newUseCaseWithCache(t, bookings)
	return uc
}

func newUseCaseWithCache(t *testing.T, bookings *fakeBookings) (*UseCase, *slots.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := slots.NewCache(client, time.Minute)
	return NewUseCase(bookings, fakeCapsters{1: {ID: 1}}, cache, logger.NewNop()), cache
}

func TestGetBookedSlots_ReadThrough(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{slots: []domain.BookedSlot{{Date: date, Hour: 9, Status: domain.StatusWaiting}}}
	uc := newUseCase(t, bookings)
	ctx := context.Background()

	first, err := uc.Execute(ctx, &Request{CapsterID: 1})
	require.NoError(t, err)
	assert.Equal(t, bookings.slots, first.Slots)
	assert.Equal(t, domain.ActiveStatuses, bookings.statuses)

	second, err := uc.Execute(ctx, &Request{CapsterID: 1})
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
	assert.Equal(t, 1, bookings.calls)
}

func TestGetBookedSlots_CustomStatuses(t *testing.T) {
	bookings := &fakeBookings{slots: []domain.BookedSlot{}}
	uc := newUseCase(t, bookings)

	_, err := uc.Execute(context.Background(), &Request{CapsterID: 1, Statuses: []domain.BookingStatus{domain.StatusCompleted}})
	require.NoError(t, err)
	assert.Equal(t, []domain.BookingStatus{domain.StatusCompleted}, bookings.statuses)
}

func TestGetBookedSlots_WithoutCache(t *testing.T) {
	bookings := &fakeBookings{slots: []domain.BookedSlot{}}
	uc := NewUseCase(bookings, fakeCapsters{1: {ID: 1}}, slots.NewCache(nil, 0), logger.NewNop())

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), &Request{CapsterID: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, bookings.calls)
}

func TestGetBookedSlots_Errors(t *testing.T) {
	uc := newUseCase(t, &fakeBookings{err: errors.New("connection refused")})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CapsterID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CapsterID: 1, Statuses: []domain.BookingStatus{"Lunas"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CapsterID: 42})
	assert.ErrorIs(t, err, ErrCapsterNotFound)

	_, err = uc.Execute(ctx, &Request{CapsterID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetBookedSlots_WriteDuringReadIsNotCached(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{slots: []domain.BookedSlot{}}
	uc, cache := newUseCaseWithCache(t, bookings)
	ctx := context.Background()

	fresh := []domain.BookedSlot{{Date: date, Hour: 9, Status: domain.StatusWaiting}}
	bookings.onRead = func() {
		// бронирование фиксируется после того, как читатель получил старый список
		bookings.slots = fresh
		require.NoError(t, cache.Invalidate(ctx, 1))
		bookings.onRead = nil
	}

	first, err := uc.Execute(ctx, &Request{CapsterID: 1})
	require.NoError(t, err)
	assert.Empty(t, first.Slots)

	second, err := uc.Execute(ctx, &Request{CapsterID: 1})
	require.NoError(t, err)
	assert.Equal(t, fresh, second.Slots)
	assert.Equal(t, 2, bookings.calls)
}
