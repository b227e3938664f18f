package update_capster

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

const (
	msgInvalidCapsterID   = "некорректный ID капстера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "капстер не найден"
	msgAlreadyExists      = "username, email или телефон уже используются"
	msgInvalidSchedule    = "некорректное расписание"
	msgInvalidData        = "некорректные данные капстера"
)

type Handler struct {
	service CapsterService
	logger  Logger
}

func NewHandler(service CapsterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/capsters/{capsterId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsterID, err := handlers.PathInt64(r, "capsterId")
	if err != nil {
		h.logger.Warn("PUT /capsters/{id} - Invalid capster ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapsterID)
		return
	}

	var req models.UpdateCapsterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /capsters/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), capsterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, capsters.ErrCapsterNotFound):
			h.logger.Warn("PUT /capsters/{id} - Capster not found: capster_id=%d", capsterID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, capsters.ErrCapsterAlreadyExists):
			h.logger.Warn("PUT /capsters/{id} - Identity already in use: capster_id=%d", capsterID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, capsters.ErrInvalidSchedule):
			h.logger.Warn("PUT /capsters/{id} - Invalid schedule: capster_id=%d, error=%v", capsterID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, capsters.ErrInvalidInput):
			h.logger.Warn("PUT /capsters/{id} - Invalid data: capster_id=%d, error=%v", capsterID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /capsters/{id} - Failed to update capster: capster_id=%d, error=%v", capsterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /capsters/{id} - Capster updated successfully: capster_id=%d", capsterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
