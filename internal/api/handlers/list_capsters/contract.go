package list_capsters

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

type CapsterService interface {
	List(ctx context.Context, req *models.ListCapstersRequest) (*models.CapsterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
