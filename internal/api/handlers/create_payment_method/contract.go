package create_payment_method

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
)

type CatalogService interface {
	CreatePaymentMethod(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
