package capsters

import "errors"

var (
	// ErrCapsterNotFound возвращается, когда капстер не найден
	ErrCapsterNotFound = errors.New("capster not found")

	// ErrCapsterAlreadyExists возвращается, когда username, email или телефон уже заняты
	ErrCapsterAlreadyExists = errors.New("username, email or phone already in use")

	// ErrInvalidSchedule возвращается при некорректном расписании
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
