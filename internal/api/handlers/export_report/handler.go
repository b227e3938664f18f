package export_report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/internal/report/export"
	exportReport "github.com/m04kA/SMC-CapsterBooking/internal/usecase/export_report"
)

const (
	msgInvalidStartDate  = "некорректный параметр start_date, ожидается YYYY-MM-DD"
	msgInvalidEndDate    = "некорректный параметр end_date, ожидается YYYY-MM-DD"
	msgInvalidPeriod     = "start_date позже end_date"
	msgUnsupportedFormat = "неподдерживаемый формат выгрузки, ожидается xlsx или pdf"
)

type Handler struct {
	useCase ExportReportUseCase
	logger  Logger
}

func NewHandler(useCase ExportReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export?start_date=&end_date=&format=xlsx|pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, err := handlers.QueryDate(r, "start_date")
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	endDate, err := handlers.QueryDate(r, "end_date")
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	req := &exportReport.Request{
		Period: domain.ReportPeriod{StartDate: startDate, EndDate: endDate},
		Format: export.Format(strings.ToLower(r.URL.Query().Get("format"))),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportReport.ErrUnsupportedFormat):
			h.logger.Warn("GET /bookings/export - Unsupported format: %q", req.Format)
			handlers.RespondBadRequest(w, msgUnsupportedFormat)
		case errors.Is(err, exportReport.ErrInvalidPeriod):
			h.logger.Warn("GET /bookings/export - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /bookings/export - Failed to export report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /bookings/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Report exported: file=%s, size=%d", result.FileName, len(result.Content))
}
