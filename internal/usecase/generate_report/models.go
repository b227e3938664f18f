package generate_report

import "github.com/m04kA/SMC-CapsterBooking/internal/domain"

// Request модель запроса отчета за период (границы включительно, nil - без ограничения)
type Request struct {
	Period domain.ReportPeriod
}

// Response отчет по завершенным бронированиям
type Response struct {
	Period domain.ReportPeriod
	Report domain.Report
}
