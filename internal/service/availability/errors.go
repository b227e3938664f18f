package availability

import "errors"

var (
	// ErrInvalidHour час вне диапазона 0..23
	ErrInvalidHour = errors.New("availability: hour must be between 0 and 23")

	// ErrDayOff капстер не работает в этот день недели
	ErrDayOff = errors.New("availability: capster does not work on this day")

	// ErrOutsideWorkingHours час вне рабочего времени капстера
	ErrOutsideWorkingHours = errors.New("availability: hour is outside working hours")

	// ErrBreakTime час попадает на перерыв
	ErrBreakTime = errors.New("availability: hour falls on a break")

	// ErrSlotTaken слот уже занят активным бронированием
	ErrSlotTaken = errors.New("availability: slot is already booked")

	// ErrDuplicateBooking клиент уже забронировал этот слот
	ErrDuplicateBooking = errors.New("availability: customer already holds this slot")
)
