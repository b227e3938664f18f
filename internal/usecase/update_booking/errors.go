package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrCapsterNotFound возвращается, когда капстер не найден
	ErrCapsterNotFound = errors.New("update_booking: capster not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_booking: service not found")

	// ErrPaymentMethodNotFound возвращается, когда способ оплаты не найден
	ErrPaymentMethodNotFound = errors.New("update_booking: payment method not found")

	// ErrOutsideSchedule возвращается, когда новый час не попадает в расписание капстера
	ErrOutsideSchedule = errors.New("update_booking: hour is outside capster schedule")

	// ErrSlotNotAvailable возвращается, когда новый слот уже занят
	ErrSlotNotAvailable = errors.New("update_booking: slot is not available")

	// ErrDuplicateBooking возвращается, когда у клиента уже есть активная бронь на этот слот
	ErrDuplicateBooking = errors.New("update_booking: duplicate booking")

	// ErrInvalidTransition возвращается при недопустимой смене статуса (строгий режим)
	ErrInvalidTransition = errors.New("update_booking: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
