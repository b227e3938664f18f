package delete_capster

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

// DeleteCapsterResponse ответ на удаление
type DeleteCapsterResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

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

// Handle DELETE /api/v1/capsters/{capsterId}
// Капстер помечается удаленным, его бронирования остаются в отчетах
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	capsterID, err := handlers.PathInt64(r, "capsterId")
	if err != nil {
		h.logger.Warn("DELETE /capsters/{id} - Invalid capster ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapsterID)
		return
	}

	if err := h.service.Delete(r.Context(), capsterID); err != nil {
		if errors.Is(err, capsters.ErrCapsterNotFound) {
			h.logger.Warn("DELETE /capsters/{id} - Capster not found: capster_id=%d", capsterID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /capsters/{id} - Failed to delete capster: capster_id=%d, error=%v", capsterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /capsters/{id} - Capster deleted: capster_id=%d", capsterID)
	handlers.RespondJSON(w, http.StatusOK, DeleteCapsterResponse{ID: capsterID, Deleted: true})
}
