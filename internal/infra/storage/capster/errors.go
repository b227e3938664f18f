package capster

import "errors"

var (
	// ErrCapsterNotFound возвращается, когда капстер не найден или удален
	ErrCapsterNotFound = errors.New("capster.repository: capster not found")

	// ErrCapsterAlreadyExists возвращается при нарушении уникальности username, email или телефона
	ErrCapsterAlreadyExists = errors.New("capster.repository: capster already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("capster.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("capster.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("capster.repository: failed to scan row")

	// ErrSchedule возвращается при ошибке (де)сериализации расписания
	ErrSchedule = errors.New("capster.repository: invalid schedule document")
)
