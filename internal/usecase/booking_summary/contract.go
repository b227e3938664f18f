package booking_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingDetails, error)
}

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	CountActive(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
