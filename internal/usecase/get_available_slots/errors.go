package get_available_slots

import "errors"

var (
	// ErrCapsterNotFound возвращается, когда капстер не найден
	ErrCapsterNotFound = errors.New("get_available_slots: capster not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
