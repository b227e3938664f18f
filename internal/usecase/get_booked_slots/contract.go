package get_booked_slots

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBookedSlots(ctx context.Context, capsterID int64, statuses []domain.BookingStatus) ([]domain.BookedSlot, error)
}

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Capster, error)
}

// SlotsCache кэш занятых слотов
// Set с поколением, полученным до чтения БД, не перезапишет кэш после конкурентной инвалидации
type SlotsCache interface {
	Get(ctx context.Context, capsterID int64, statuses []domain.BookingStatus) ([]domain.BookedSlot, bool, error)
	Generation(ctx context.Context, capsterID int64) (int64, error)
	Set(ctx context.Context, capsterID int64, gen int64, statuses []domain.BookingStatus, slots []domain.BookedSlot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
