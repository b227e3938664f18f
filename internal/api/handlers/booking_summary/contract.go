package booking_summary

import (
	"context"

	bookingSummary "github.com/m04kA/SMC-CapsterBooking/internal/usecase/booking_summary"
)

type BookingSummaryUseCase interface {
	Execute(ctx context.Context) (*bookingSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
