package create_capster

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/capsters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCapsterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capsters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, capsters.ErrCapsterAlreadyExists):
			h.logger.Warn("POST /capsters - Capster already exists: username=%s", req.Username)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, capsters.ErrInvalidSchedule):
			h.logger.Warn("POST /capsters - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, capsters.ErrInvalidInput):
			h.logger.Warn("POST /capsters - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /capsters - Failed to create capster: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /capsters - Capster created successfully: capster_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
