package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapsterBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CapsterBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput          = "некорректные данные бронирования"
	msgSlotNotAvailable      = "выбранный час уже занят"
	msgDuplicateBooking      = "такая заявка уже отправлена"
	msgCapsterNotFound       = "капстер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgPaymentMethodNotFound = "способ оплаты не найден"
	msgOutsideSchedule       = "капстер не работает в выбранный час"
	msgInvalidBookingDate    = "дата бронирования в прошлом"
	msgTooLateToBook         = "слишком поздно для бронирования этого часа"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: capster_id=%d, date=%s, hour=%d", req.CapsterID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate submission: capster_id=%d, date=%s, hour=%d", req.CapsterID, req.Date, req.Hour)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrCapsterNotFound):
			h.logger.Warn("POST /bookings - Capster not found: capster_id=%d", req.CapsterID)
			handlers.RespondNotFound(w, msgCapsterNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrPaymentMethodNotFound):
			h.logger.Warn("POST /bookings - Payment method not found: payment_id=%d", req.PaymentID)
			handlers.RespondNotFound(w, msgPaymentMethodNotFound)

		case errors.Is(err, createBooking.ErrOutsideSchedule):
			h.logger.Warn("POST /bookings - Outside schedule: capster_id=%d, date=%s, hour=%d", req.CapsterID, req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgOutsideSchedule)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: date=%s, hour=%d", req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: capster_id=%d, error=%v", req.CapsterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, capster_id=%d", result.ID, result.CapsterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
