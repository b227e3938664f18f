package get_booked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	getBookedSlots "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_booked_slots"
)

const (
	msgInvalidCapsterID = "некорректный ID капстера"
	msgInvalidStatus    = "некорректный статус бронирования"
	msgCapsterNotFound  = "капстер не найден"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/time/{capsterId}?status=
// Без status возвращаются часы активных бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsterID, err := handlers.PathInt64(r, "capsterId")
	if err != nil {
		h.logger.Warn("GET /bookings/time/{id} - Invalid capster ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapsterID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(capsterID, r.URL.Query()["status"]))
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrCapsterNotFound):
			h.logger.Warn("GET /bookings/time/{id} - Capster not found: capster_id=%d", capsterID)
			handlers.RespondNotFound(w, msgCapsterNotFound)

		case errors.Is(err, getBookedSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/time/{id} - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings/time/{id} - Failed to get booked slots: capster_id=%d, error=%v", capsterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/time/{id} - Booked slots retrieved: capster_id=%d, count=%d", capsterID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
