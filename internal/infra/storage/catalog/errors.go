package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrPaymentMethodNotFound возвращается, когда способ оплаты не найден
	ErrPaymentMethodNotFound = errors.New("catalog.repository: payment method not found")

	// ErrAlreadyExists возвращается при повторном имени услуги или способа оплаты
	ErrAlreadyExists = errors.New("catalog.repository: name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
