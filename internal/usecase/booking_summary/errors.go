package booking_summary

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("booking_summary: internal error")
