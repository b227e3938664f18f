package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.CapsterID <= 0 {
		return fmt.Errorf("%w: capsterID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.PaymentID <= 0 {
		return fmt.Errorf("%w: paymentID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Hour < domain.MinHour || req.Hour > domain.MaxHour {
		return fmt.Errorf("%w: hour must be between %d and %d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	if len(req.HaircutType) > domain.MaxHaircutLength {
		return fmt.Errorf("%w: haircut type must be at most %d characters", ErrInvalidInput, domain.MaxHaircutLength)
	}

	if req.Image != nil && len(*req.Image) > domain.MaxImageLength {
		return fmt.Errorf("%w: image must be at most %d characters", ErrInvalidInput, domain.MaxImageLength)
	}

	return nil
}

// validateDate проверяет, что дата и час еще не прошли
func validateDate(bookingDate time.Time, hour int, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if domain.SameDay(bookingDate, now) && hour <= now.Hour() {
		return fmt.Errorf("%w: %02d:00 has already started", ErrTooLateToBook, hour)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
