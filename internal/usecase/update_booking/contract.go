package update_booking

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Capster, error)
}

// CatalogRepository интерфейс репозитория услуг и способов оплаты
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetPaymentMethodByID(ctx context.Context, id int64) (*domain.PaymentMethod, error)
}

// SlotsCache кэш занятых слотов, который нужно сбросить после записи
type SlotsCache interface {
	Invalidate(ctx context.Context, capsterIDs ...int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
