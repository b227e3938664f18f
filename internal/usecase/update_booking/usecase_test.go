package update_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/booking"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	catalogRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
	"github.com/m04kA/SMC-CapsterBooking/pkg/txmanager"
)

var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

type fakeBookings struct {
	bookings  map[int64]*domain.Booking
	updates   int
	updateErr error
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CapsterID == *filter.CapsterID && domain.SameDay(b.Date, *filter.Date) && b.IsActive() {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookings) Update(_ context.Context, b *domain.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.bookings[b.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updates++
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

type fakeCapsters map[int64]*domain.Capster

func (f fakeCapsters) GetByID(_ context.Context, id int64) (*domain.Capster, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, capsterRepo.ErrCapsterNotFound
}

type fakeCatalog struct{}

func (fakeCatalog) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if id > 2 {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: id}, nil
}

func (fakeCatalog) GetPaymentMethodByID(_ context.Context, id int64) (*domain.PaymentMethod, error) {
	if id > 2 {
		return nil, catalogRepo.ErrPaymentMethodNotFound
	}
	return &domain.PaymentMethod{ID: id}, nil
}

type fakeCache struct{ invalidated []int64 }

func (f *fakeCache) Invalidate(_ context.Context, ids ...int64) error {
	f.invalidated = append(f.invalidated, ids...)
	return nil
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type env struct {
	uc       *UseCase
	bookings *fakeBookings
	cache    *fakeCache
}

func newEnv(strict bool) *env {
	mondayOn := domain.MergeSchedule(domain.DefaultSchedule(), domain.ScheduleOverride{
		domain.Monday: {IsActive: ptr.Ptr(true)},
	})
	capsters := fakeCapsters{
		1: {ID: 1, Schedule: mondayOn},
		2: {ID: 2, Schedule: mondayOn},
	}

	e := &env{
		bookings: &fakeBookings{bookings: map[int64]*domain.Booking{
			1: {ID: 1, Name: "Andi", Email: "andi@mail.com", Phone: "0812", CapsterID: 1, Date: monday, Hour: 9,
				ServiceID: 1, PaymentID: 1, Status: domain.StatusWaiting, HaircutType: "Fade"},
			2: {ID: 2, Name: "Budi", Email: "budi@mail.com", Phone: "0813", CapsterID: 1, Date: monday, Hour: 10,
				ServiceID: 1, PaymentID: 1, Status: domain.StatusWaiting},
			3: {ID: 3, Name: "Citra", Email: "citra@mail.com", Phone: "0814", CapsterID: 1, Date: monday, Hour: 10,
				ServiceID: 1, PaymentID: 1, Status: domain.StatusCancelled},
		}},
		cache: &fakeCache{},
	}
	e.uc = NewUseCase(e.bookings, capsters, fakeCatalog{}, e.cache, inlineTx{}, strict, logger.NewNop())
	return e
}

func TestUpdateBooking_EmptyUpdateKeepsFields(t *testing.T) {
	e := newEnv(false)
	before := *e.bookings.bookings[1]

	resp, err := e.uc.Execute(context.Background(), &Request{BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, before.Name, resp.Name)
	assert.Equal(t, before.Email, resp.Email)
	assert.Equal(t, before.Hour, resp.Hour)
	assert.Equal(t, string(before.Status), resp.Status)
	assert.Equal(t, before.HaircutType, resp.HaircutType)
	assert.Nil(t, resp.Rating)
}

func TestUpdateBooking_FullUpdate(t *testing.T) {
	e := newEnv(false)
	status := domain.StatusConfirmed

	resp, err := e.uc.Execute(context.Background(), &Request{
		BookingID:   1,
		Name:        ptr.Ptr("Andi S"),
		Email:       ptr.Ptr("Andi.S@mail.com"),
		Phone:       ptr.Ptr("0899"),
		CapsterID:   ptr.Ptr(int64(2)),
		Date:        ptr.Ptr(monday),
		Hour:        ptr.Ptr(14),
		ServiceID:   ptr.Ptr(int64(2)),
		PaymentID:   ptr.Ptr(int64(2)),
		Status:      &status,
		Rating:      ptr.Ptr(5),
		Image:       ptr.Ptr("https://img/ref.png"),
		HaircutType: ptr.Ptr("Undercut"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Andi S", resp.Name)
	assert.Equal(t, "andi.s@mail.com", resp.Email)
	assert.Equal(t, "0899", resp.Phone)
	assert.Equal(t, int64(2), resp.CapsterID)
	assert.Equal(t, 14, resp.Hour)
	assert.Equal(t, int64(2), resp.ServiceID)
	assert.Equal(t, int64(2), resp.PaymentID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 5, *resp.Rating)
	assert.Equal(t, "https://img/ref.png", *resp.Image)
	assert.Equal(t, "Undercut", resp.HaircutType)

	assert.ElementsMatch(t, []int64{1, 2}, e.cache.invalidated)
}

func TestUpdateBooking_SlotChecks(t *testing.T) {
	e := newEnv(false)
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, &Request{BookingID: 1, Hour: ptr.Ptr(10)})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = e.uc.Execute(ctx, &Request{BookingID: 1, Hour: ptr.Ptr(12)})
	assert.ErrorIs(t, err, ErrOutsideSchedule)

	// отмененная бронь на 10:00 не мешает самой брони остаться на своем часе
	resp, err := e.uc.Execute(ctx, &Request{BookingID: 2, Hour: ptr.Ptr(10), Name: ptr.Ptr("Budi")})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Hour)

	// возврат отмененной брони в работу на занятый час
	waiting := domain.StatusWaiting
	_, err = e.uc.Execute(ctx, &Request{BookingID: 3, Status: &waiting})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// отмена не требует проверки слота
	cancelled := domain.StatusCancelled
	_, err = e.uc.Execute(ctx, &Request{BookingID: 1, Status: &cancelled, Hour: ptr.Ptr(10)})
	require.NoError(t, err)
}

func TestUpdateBooking_StrictTransitions(t *testing.T) {
	completed := domain.StatusCompleted

	permissive := newEnv(false)
	_, err := permissive.uc.Execute(context.Background(), &Request{BookingID: 1, Status: &completed})
	require.NoError(t, err)

	strict := newEnv(true)
	_, err = strict.uc.Execute(context.Background(), &Request{BookingID: 1, Status: &completed})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	confirmed := domain.StatusConfirmed
	_, err = strict.uc.Execute(context.Background(), &Request{BookingID: 1, Status: &confirmed})
	require.NoError(t, err)
}

func TestUpdateBooking_Errors(t *testing.T) {
	e := newEnv(false)
	ctx := context.Background()
	unknown := domain.BookingStatus("Lunas")

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"not found", &Request{BookingID: 99}, ErrBookingNotFound},
		{"empty name", &Request{BookingID: 1, Name: ptr.Ptr("  ")}, ErrInvalidInput},
		{"bad email", &Request{BookingID: 1, Email: ptr.Ptr("nope")}, ErrInvalidInput},
		{"bad hour", &Request{BookingID: 1, Hour: ptr.Ptr(24)}, ErrInvalidInput},
		{"bad rating", &Request{BookingID: 1, Rating: ptr.Ptr(6)}, ErrInvalidInput},
		{"bad status", &Request{BookingID: 1, Status: &unknown}, ErrInvalidInput},
		{"unknown capster", &Request{BookingID: 1, CapsterID: ptr.Ptr(int64(7))}, ErrCapsterNotFound},
		{"unknown service", &Request{BookingID: 1, ServiceID: ptr.Ptr(int64(7))}, ErrServiceNotFound},
		{"unknown payment", &Request{BookingID: 1, PaymentID: ptr.Ptr(int64(7))}, ErrPaymentMethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, e.bookings.updates)
}

func TestUpdateBooking_SerializationFailureIsConflict(t *testing.T) {
	e := newEnv(false)
	e.bookings.updateErr = fmt.Errorf("%w: Update - execute: pq: could not serialize access", txmanager.ErrSerializationFailure)

	_, err := e.uc.Execute(context.Background(), &Request{BookingID: 1, Hour: ptr.Ptr(11)})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, e.cache.invalidated)
}
