package list_payment_methods

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
)

type CatalogService interface {
	ListPaymentMethods(ctx context.Context) (*models.PaymentMethodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
