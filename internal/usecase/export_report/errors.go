package export_report

import "errors"

var (
	// ErrUnsupportedFormat возвращается для неизвестного формата выгрузки
	ErrUnsupportedFormat = errors.New("export_report: unsupported format")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("export_report: start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_report: internal error")
)
