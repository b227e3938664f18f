package update_capster

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

type CapsterService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCapsterRequest) (*models.CapsterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
