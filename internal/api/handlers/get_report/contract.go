package get_report

import (
	"context"

	generateReport "github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
)

type GenerateReportUseCase interface {
	Execute(ctx context.Context, req *generateReport.Request) (*generateReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
