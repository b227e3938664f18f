package catalog

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг и способов оплаты
type CatalogRepository interface {
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]*domain.PaymentMethod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
