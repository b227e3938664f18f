package list_all_capsters

import (
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
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

// Handle GET /api/v1/capsters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /capsters - Failed to list capsters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /capsters - Capsters retrieved: count=%d", len(result.Capsters))
	handlers.RespondJSON(w, http.StatusOK, result)
}
