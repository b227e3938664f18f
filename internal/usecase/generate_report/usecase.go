package generate_report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/internal/report"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
)

// UseCase use case для построения отчета по завершенным бронированиям
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выбирает завершенные бронирования за период и агрегирует их
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	period := normalizePeriod(req.Period)
	uc.logger.Info("GenerateReport: period=%s", formatPeriod(period))

	if period.StartDate != nil && period.EndDate != nil && period.StartDate.After(*period.EndDate) {
		uc.logger.Warn("GenerateReport: invalid period %s", formatPeriod(period))
		return nil, ErrInvalidPeriod
	}

	bookings, err := uc.bookingRepo.ListDetails(ctx, domain.BookingsFilter{
		DateFrom: period.StartDate,
		DateTo:   period.EndDate,
		Statuses: []domain.BookingStatus{domain.StatusCompleted},
	})
	if err != nil {
		uc.logger.Error("GenerateReport: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	rep := report.Aggregate(bookings)

	uc.logger.Info("GenerateReport: %d completed bookings, grand total %d", len(rep.Rows), rep.GrandTotal)

	return &Response{Period: period, Report: rep}, nil
}

func normalizePeriod(p domain.ReportPeriod) domain.ReportPeriod {
	var out domain.ReportPeriod
	if p.StartDate != nil {
		out.StartDate = ptr.Ptr(domain.TruncateDay(*p.StartDate))
	}
	if p.EndDate != nil {
		out.EndDate = ptr.Ptr(domain.TruncateDay(*p.EndDate))
	}
	return out
}

func formatPeriod(p domain.ReportPeriod) string {
	from, to := "*", "*"
	if p.StartDate != nil {
		from = p.StartDate.Format(domain.DateFormat)
	}
	if p.EndDate != nil {
		to = p.EndDate.Format(domain.DateFormat)
	}
	return from + ".." + to
}
