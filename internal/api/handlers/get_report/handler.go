package get_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	generateReport "github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
)

const (
	msgInvalidStartDate = "некорректный параметр start_date, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный параметр end_date, ожидается YYYY-MM-DD"
	msgInvalidPeriod    = "start_date позже end_date"
)

type Handler struct {
	useCase GenerateReportUseCase
	logger  Logger
}

func NewHandler(useCase GenerateReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings?start_date=&end_date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, err := handlers.QueryDate(r, "start_date")
	if err != nil {
		h.logger.Warn("GET /reports/bookings - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	endDate, err := handlers.QueryDate(r, "end_date")
	if err != nil {
		h.logger.Warn("GET /reports/bookings - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(startDate, endDate))
	if err != nil {
		if errors.Is(err, generateReport.ErrInvalidPeriod) {
			h.logger.Warn("GET /reports/bookings - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reports/bookings - Failed to generate report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/bookings - Report generated: rows=%d, grand_total=%d",
		len(result.Report.Rows), result.Report.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
