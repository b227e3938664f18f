package list_capsters

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/capsters/list
// Пустое тело - первая страница без фильтров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ListCapstersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /capsters/list - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.List(r.Context(), &req)
	if err != nil {
		h.logger.Error("POST /capsters/list - Failed to list capsters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /capsters/list - Capsters retrieved: count=%d", len(result.Capsters))
	handlers.RespondJSON(w, http.StatusOK, result)
}
