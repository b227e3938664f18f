package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/availability"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
)

// UseCase use case для получения свободных часов капстера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	capsterRepo  CapsterRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capsterRepo CapsterRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		capsterRepo:  capsterRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных часов
// Возвращает часы, прошедшие проверку расписания и занятости; прошедшие часы отбрасываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: capster=%d, date=%s", req.CapsterID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.TruncateDay(req.Date)

	// 2. Получаем капстера
	capster, err := uc.capsterRepo.GetByID(ctx, req.CapsterID)
	if err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			uc.logger.Warn("GetAvailableSlots: capster id=%d not found", req.CapsterID)
			return nil, ErrCapsterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get capster id=%d: %v", req.CapsterID, err)
		return nil, fmt.Errorf("%w: failed to get capster: %v", ErrInternal, err)
	}

	day := domain.DayScheduleFor(capster, domain.WeekdayOf(date))
	response := &Response{
		Date:      date,
		CapsterID: capster.ID,
		DayOff:    !day.IsActive,
		Working:   day.WorkingRange,
		Break:     day.BreakRange,
		Slots:     []Slot{},
	}

	// 3. В выходной бронирования не нужны
	if !day.IsActive {
		uc.logger.Info("GetAvailableSlots: capster id=%d does not work on %s", capster.ID, date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Активные бронирования на дату
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		CapsterID: ptr.Ptr(capster.ID),
		Date:      &date,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Свободные часы
	for _, slot := range availability.AvailableSlots(capster, date, bookings, uc.timeProvider.Now()) {
		response.Slots = append(response.Slots, Slot{
			Hour:      slot.Hour,
			StartTime: slot.Start,
			EndTime:   slot.End,
		})
	}

	uc.logger.Info("GetAvailableSlots: found %d free hours for capster=%d", len(response.Slots), capster.ID)

	return response, nil
}
