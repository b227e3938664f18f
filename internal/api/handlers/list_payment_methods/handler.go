package list_payment_methods

import (
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payment-methods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPaymentMethods(r.Context())
	if err != nil {
		h.logger.Error("GET /payment-methods - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /payment-methods - Retrieved: count=%d", len(result.PaymentMethods))
	handlers.RespondJSON(w, http.StatusOK, result)
}
