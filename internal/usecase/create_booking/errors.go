package create_booking

import "errors"

var (
	// ErrCapsterNotFound возвращается, когда капстер не найден
	ErrCapsterNotFound = errors.New("create_booking: capster not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrPaymentMethodNotFound возвращается, когда способ оплаты не найден
	ErrPaymentMethodNotFound = errors.New("create_booking: payment method not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда выбранный час сегодня уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrOutsideSchedule возвращается, когда час не рабочий: выходной, вне рабочего времени или перерыв
	ErrOutsideSchedule = errors.New("create_booking: hour is not in capster schedule")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDuplicateBooking возвращается при повторной отправке той же заявки
	ErrDuplicateBooking = errors.New("create_booking: booking already submitted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
