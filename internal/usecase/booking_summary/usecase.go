package booking_summary

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/internal/report"
)

// UseCase use case для сводки дашборда: число капстеров и очереди на сегодня
type UseCase struct {
	bookingRepo  BookingRepository
	capsterRepo  CapsterRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, capsterRepo CapsterRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		capsterRepo:  capsterRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает сводку за текущий день (все статусы)
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := domain.TruncateDay(uc.timeProvider.Now())
	uc.logger.Info("BookingSummary: date=%s", today.Format(domain.DateFormat))

	capsters, err := uc.capsterRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("BookingSummary: failed to count capsters: %v", err)
		return nil, fmt.Errorf("%w: failed to count capsters: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListDetails(ctx, domain.BookingsFilter{Date: &today})
	if err != nil {
		uc.logger.Error("BookingSummary: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	summary := report.Summary(bookings, capsters)

	uc.logger.Info("BookingSummary: %d capsters, %d bookings today", summary.CapsterActiveCount, summary.TotalBookingsToday)

	return &Response{Date: today, Summary: summary}, nil
}
