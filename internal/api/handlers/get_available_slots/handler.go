package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidCapsterID = "некорректный ID капстера"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgCapsterNotFound  = "капстер не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capsters/{capsterId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsterID, err := handlers.PathInt64(r, "capsterId")
	if err != nil {
		h.logger.Warn("GET /capsters/{id}/available-slots - Invalid capster ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapsterID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /capsters/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(capsterID, dateStr)
	if err != nil {
		h.logger.Warn("GET /capsters/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCapsterNotFound):
			h.logger.Warn("GET /capsters/{id}/available-slots - Capster not found: capster_id=%d", capsterID)
			handlers.RespondNotFound(w, msgCapsterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /capsters/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /capsters/{id}/available-slots - Failed to get slots: capster_id=%d, error=%v", capsterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /capsters/{id}/available-slots - Slots retrieved successfully: capster_id=%d, date=%s, slots_count=%d",
		capsterID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
