package generate_report

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
