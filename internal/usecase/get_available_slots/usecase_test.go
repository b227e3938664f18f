package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

type fakeBookings []*domain.Booking

func (f fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f {
		if b.CapsterID == *filter.CapsterID && domain.SameDay(b.Date, *filter.Date) && b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCapsters map[int64]*domain.Capster

func (f fakeCapsters) GetByID(_ context.Context, id int64) (*domain.Capster, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, capsterRepo.ErrCapsterNotFound
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(bookings fakeBookings) *UseCase {
	working := types.MustParseTimeRange("09:00 - 13:00")
	capsters := fakeCapsters{1: {ID: 1, Schedule: domain.MergeSchedule(domain.DefaultSchedule(), domain.ScheduleOverride{
		domain.Monday: {IsActive: ptr.Ptr(true), WorkingRange: &working},
	})}}

	uc := NewUseCase(bookings, capsters, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestGetAvailableSlots(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	uc := newUseCase(fakeBookings{
		{ID: 1, CapsterID: 1, Date: monday, Hour: 9, Status: domain.StatusConfirmed},
		{ID: 2, CapsterID: 1, Date: monday, Hour: 10, Status: domain.StatusCancelled},
	})

	resp, err := uc.Execute(context.Background(), &Request{CapsterID: 1, Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.DayOff)
	// 09 занят, 12 - перерыв по умолчанию
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 10, resp.Slots[0].Hour)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[1].EndTime)
}

func TestGetAvailableSlots_DayOff(t *testing.T) {
	uc := newUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{CapsterID: 1, Date: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, resp.DayOff)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlots_Errors(t *testing.T) {
	uc := newUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{CapsterID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CapsterID: 9, Date: time.Now()})
	assert.ErrorIs(t, err, ErrCapsterNotFound)
}
