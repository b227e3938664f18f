package get_capster

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
)

const (
	msgInvalidCapsterID = "некорректный ID капстера"
	msgNotFound         = "капстер не найден"
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

// Handle GET /api/v1/capsters/{capsterId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsterID, err := handlers.PathInt64(r, "capsterId")
	if err != nil {
		h.logger.Warn("GET /capsters/{id} - Invalid capster ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapsterID)
		return
	}

	result, err := h.service.GetByID(r.Context(), capsterID)
	if err != nil {
		if errors.Is(err, capsters.ErrCapsterNotFound) {
			h.logger.Warn("GET /capsters/{id} - Capster not found: capster_id=%d", capsterID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /capsters/{id} - Failed to get capster: capster_id=%d, error=%v", capsterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /capsters/{id} - Capster retrieved: capster_id=%d", capsterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
