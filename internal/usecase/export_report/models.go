package export_report

import (
	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/internal/report/export"
)

// Request модель запроса на выгрузку отчета
type Request struct {
	Period domain.ReportPeriod
	Format export.Format // пусто - xlsx
}

// Response выгруженный файл
type Response struct {
	Content     []byte
	ContentType string
	FileName    string
}
