package booking_summary

import (
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
)

type Handler struct {
	useCase BookingSummaryUseCase
	logger  Logger
}

func NewHandler(useCase BookingSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/booking-summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/booking-summary - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/booking-summary - Summary built: capsters=%d, bookings=%d",
		result.Summary.CapsterActiveCount, result.Summary.TotalBookingsToday)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
