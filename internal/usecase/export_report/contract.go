package export_report

import (
	"context"

	"github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
)

// ReportGenerator строит отчет за период
type ReportGenerator interface {
	Execute(ctx context.Context, req *generate_report.Request) (*generate_report.Response, error)
}

// Metrics счетчик выгрузок
type Metrics interface {
	IncReportExported(format string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
