package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/booking"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	catalogRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CapsterBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
	"github.com/m04kA/SMC-CapsterBooking/pkg/txmanager"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

type fakeBookings struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
	listErr  error
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.Occupies(b.CapsterID, b.Date, b.Hour) {
			return nil, bookingRepo.ErrSlotNotAvailable
		}
	}
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	f.bookings = append(f.bookings, &stored)
	out := stored
	return &out, nil
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.CapsterID != nil && b.CapsterID != *filter.CapsterID {
			continue
		}
		if filter.Date != nil && !domain.SameDay(b.Date, *filter.Date) {
			continue
		}
		if len(filter.Statuses) > 0 && !b.Status.IsActive() {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBookings) setStatus(id int64, status domain.BookingStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
		}
	}
}

type fakeCapsters map[int64]*domain.Capster

func (f fakeCapsters) GetByID(_ context.Context, id int64) (*domain.Capster, error) {
	c, ok := f[id]
	if !ok {
		return nil, capsterRepo.ErrCapsterNotFound
	}
	return c, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if id != 1 {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: 1, Name: "Cukur", Price: 50000}, nil
}

func (fakeCatalog) GetPaymentMethodByID(_ context.Context, id int64) (*domain.PaymentMethod, error) {
	if id != 1 {
		return nil, catalogRepo.ErrPaymentMethodNotFound
	}
	return &domain.PaymentMethod{ID: 1, Name: "Cash"}, nil
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, ids ...int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, ids...)
	return nil
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts map[string]int
}

func (f *fakeMetrics) IncBookingCreated(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created[status]++
}

func (f *fakeMetrics) IncSlotConflict(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts[reason]++
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type env struct {
	uc       *UseCase
	bookings *fakeBookings
	cache    *fakeCache
	metrics  *fakeMetrics
}

func testCapsters() fakeCapsters {
	working := types.MustParseTimeRange("09:00 - 17:00")
	lunch := types.MustParseTimeRange("12:00 - 13:00")
	return fakeCapsters{
		1: {ID: 1, Username: "X", Schedule: domain.MergeSchedule(domain.DefaultSchedule(), domain.ScheduleOverride{
			domain.Monday: {IsActive: ptr.Ptr(true), WorkingRange: &working, BreakRange: &lunch},
		})},
		2: {ID: 2, Username: "Y", Schedule: domain.MergeSchedule(domain.DefaultSchedule(), domain.ScheduleOverride{
			domain.Monday: {IsActive: ptr.Ptr(true)},
		})},
	}
}

// fixedNow воскресенье перед понедельником 2024-06-03
var fixedNow = fixedTime{now: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)}

func newEnv() *env {
	capsters := testCapsters()

	e := &env{
		bookings: &fakeBookings{},
		cache:    &fakeCache{},
		metrics:  &fakeMetrics{created: map[string]int{}, conflicts: map[string]int{}},
	}
	e.uc = NewUseCase(e.bookings, capsters, fakeCatalog{}, e.cache, e.metrics, inlineTx{}, logger.NewNop())
	e.uc.timeProvider = fixedNow
	return e
}

func request(hour int, email string) *Request {
	return &Request{
		Name:        "Andi",
		Email:       email,
		Phone:       "0812",
		CapsterID:   1,
		Date:        time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Hour:        hour,
		ServiceID:   1,
		PaymentID:   1,
		HaircutType: "Fade",
	}
}

func TestCreateBooking_Scenario(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, request(12, "andi@mail.com"))
	assert.ErrorIs(t, err, ErrOutsideSchedule)

	first, err := e.uc.Execute(ctx, request(9, "andi@mail.com"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusWaiting), first.Status)
	assert.Equal(t, 9, first.Hour)

	_, err = e.uc.Execute(ctx, request(9, "Andi@Mail.com"))
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	_, err = e.uc.Execute(ctx, request(9, "budi@mail.com"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	e.bookings.setStatus(first.ID, domain.StatusCancelled)

	again, err := e.uc.Execute(ctx, request(9, "andi@mail.com"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)

	assert.Equal(t, 2, e.metrics.created[string(domain.StatusWaiting)])
	assert.Equal(t, 1, e.metrics.conflicts["duplicate"])
	assert.Equal(t, 1, e.metrics.conflicts["taken"])
	assert.Equal(t, 1, e.metrics.conflicts["schedule"])
	assert.Equal(t, []int64{1, 1}, e.cache.invalidated)
}

func TestCreateBooking_DifferentCapstersSameHour(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, request(10, "andi@mail.com"))
	require.NoError(t, err)

	req := request(10, "andi@mail.com")
	req.CapsterID = 2
	_, err = e.uc.Execute(ctx, req)
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentRequestsForSameSlot(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.uc.Execute(ctx, request(14, string(rune('a'+i))+"@mail.com"))
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	}
	assert.Equal(t, 1, ok)
}

func TestCreateBooking_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.Name = " " }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }, ErrInvalidInput},
		{"missing phone", func(r *Request) { r.Phone = "" }, ErrInvalidInput},
		{"hour out of range", func(r *Request) { r.Hour = 24 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"past date", func(r *Request) { r.Date = time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
		{"started hour today", func(r *Request) { r.Date = time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC); r.Hour = 10 }, ErrTooLateToBook},
		{"unknown capster", func(r *Request) { r.CapsterID = 42 }, ErrCapsterNotFound},
		{"unknown service", func(r *Request) { r.ServiceID = 42 }, ErrServiceNotFound},
		{"unknown payment", func(r *Request) { r.PaymentID = 42 }, ErrPaymentMethodNotFound},
		{"day off", func(r *Request) { r.Date = time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC) }, ErrOutsideSchedule},
		{"after hours", func(r *Request) { r.Hour = 17 }, ErrOutsideSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			req := request(10, "andi@mail.com")
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.bookings.bookings)
		})
	}
}

func TestCreateBooking_RepositoryFailure(t *testing.T) {
	e := newEnv()
	e.bookings.listErr = errors.New("connection reset")

	_, err := e.uc.Execute(context.Background(), request(10, "andi@mail.com"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, e.cache.invalidated)
}

// newSQLEnv собирает use case поверх настоящих репозитория и менеджера транзакций с sqlmock
func newSQLEnv(t *testing.T) (*UseCase, sqlmock.Sqlmock, *fakeMetrics) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	m := &fakeMetrics{created: map[string]int{}, conflicts: map[string]int{}}
	uc := NewUseCase(
		bookingRepo.NewRepository(wrapped),
		testCapsters(),
		fakeCatalog{},
		&fakeCache{},
		m,
		txmanager.NewTransactionManager(wrapped),
		logger.NewNop(),
	)
	uc.timeProvider = fixedNow
	return uc, mock, m
}

func TestCreateBooking_SerializationFailureIsConflict(t *testing.T) {
	uc, mock, m := newSQLEnv(t)

	for i := 0; i < txmanager.MaxSerializableAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()
	}

	_, err := uc.Execute(context.Background(), request(9, "andi@mail.com"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, m.conflicts["concurrent"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_SerializationFailureRetriedUntilSlotTaken(t *testing.T) {
	uc, mock, m := newSQLEnv(t)
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	// первая попытка проигрывает на commit, повтор видит зафиксированное бронирование
	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "capster_id", "booking_date", "booking_hour", "service_id",
		"payment_id", "status", "rating", "image", "haircut_type", "created_at", "updated_at",
	}).AddRow(7, "Budi", "budi@mail.com", "0813", 1, date, 9, 1, 1, "Menunggu", nil, nil, "Fade", now, now))
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), request(9, "andi@mail.com"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, m.conflicts["taken"])
	assert.Empty(t, m.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
