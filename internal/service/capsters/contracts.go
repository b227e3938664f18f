package capsters

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// CapsterRepository интерфейс репозитория капстеров
type CapsterRepository interface {
	Create(ctx context.Context, capster *domain.Capster) (*domain.Capster, error)
	GetByID(ctx context.Context, id int64) (*domain.Capster, error)
	List(ctx context.Context, filter domain.CapstersFilter) ([]*domain.Capster, int, error)
	ExistsByIdentity(ctx context.Context, username, email, phone string, excludeID *int64) (bool, error)
	Update(ctx context.Context, capster *domain.Capster) error
	SoftDelete(ctx context.Context, id int64) error
}

// SlotsCache кэш занятых слотов капстера
type SlotsCache interface {
	Invalidate(ctx context.Context, capsterIDs ...int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
