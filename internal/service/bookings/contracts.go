package bookings

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingDetails, error)
	Delete(ctx context.Context, id int64) error
}

// SlotsCache кэш занятых слотов, который нужно сбросить после удаления
type SlotsCache interface {
	Invalidate(ctx context.Context, capsterIDs ...int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
