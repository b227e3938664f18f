package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/bookings"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/bookings/models"
)

const (
	msgInvalidDateFrom  = "некорректный параметр date_from, ожидается YYYY-MM-DD"
	msgInvalidDateTo    = "некорректный параметр date_to, ожидается YYYY-MM-DD"
	msgInvalidCapsterID = "некорректный параметр capster_id"
	msgInvalidStatus    = "некорректный статус бронирования"
	msgInvalidTimeRange = "date_from позже date_to"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date_from=&date_to=&capster_id=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ListBookingsRequest

	dateFrom, err := handlers.QueryDate(r, "date_from")
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date_from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFrom)
		return
	}
	req.DateFrom = dateFrom

	dateTo, err := handlers.QueryDate(r, "date_to")
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date_to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTo)
		return
	}
	req.DateTo = dateTo

	if raw := r.URL.Query().Get("capster_id"); raw != "" {
		capsterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid capster_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapsterID)
			return
		}
		req.CapsterID = &capsterID
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /bookings - Invalid time range")
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
