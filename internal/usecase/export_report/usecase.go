package export_report

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/report/export"
	"github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
)

// UseCase use case для выгрузки отчета в файл (xlsx или pdf)
type UseCase struct {
	generator ReportGenerator
	metrics   Metrics
	title     string
	fileName  string
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// title - имя листа / заголовок документа, fileName - имя файла без расширения
func NewUseCase(generator ReportGenerator, metrics Metrics, title, fileName string, logger Logger) *UseCase {
	return &UseCase{
		generator: generator,
		metrics:   metrics,
		title:     title,
		fileName:  fileName,
		logger:    logger,
	}
}

// Execute строит отчет и записывает его в выбранном формате
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportReport: format=%q", req.Format)

	writer, err := export.NewWriter(req.Format)
	if err != nil {
		uc.logger.Warn("ExportReport: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	generated, err := uc.generator.Execute(ctx, &generate_report.Request{Period: req.Period})
	if err != nil {
		if errors.Is(err, generate_report.ErrInvalidPeriod) {
			return nil, ErrInvalidPeriod
		}
		uc.logger.Error("ExportReport: failed to generate report: %v", err)
		return nil, fmt.Errorf("%w: failed to generate report: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, uc.title, generated.Report); err != nil {
		uc.logger.Error("ExportReport: failed to write %s: %v", writer.Extension(), err)
		return nil, fmt.Errorf("%w: failed to write report: %v", ErrInternal, err)
	}

	uc.metrics.IncReportExported(writer.Extension())

	uc.logger.Info("ExportReport: exported %d rows as %s (%d bytes)",
		len(generated.Report.Rows), writer.Extension(), buf.Len())

	return &Response{
		Content:     buf.Bytes(),
		ContentType: writer.ContentType(),
		FileName:    uc.fileName + "." + writer.Extension(),
	}, nil
}
