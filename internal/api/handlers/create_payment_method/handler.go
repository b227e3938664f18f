package create_payment_method

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyExists      = "способ оплаты с таким названием уже существует"
	msgInvalidData        = "некорректные данные способа оплаты"
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

// Handle POST /api/v1/payment-methods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentMethodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment-methods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePaymentMethod(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAlreadyExists):
			h.logger.Warn("POST /payment-methods - Already exists: name=%s", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /payment-methods - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /payment-methods - Failed to create: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-methods - Created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
