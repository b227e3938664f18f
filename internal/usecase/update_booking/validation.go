package update_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// validateRequest валидирует переданные поля
// Переданное пустое значение обязательного поля - ошибка, а не "оставить как есть"
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
	}

	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil || len(*req.Email) > domain.MaxEmailLength {
			return fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
	}

	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			return fmt.Errorf("%w: phone cannot be empty", ErrInvalidInput)
		}
		if len(*req.Phone) > domain.MaxPhoneLength {
			return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
		}
	}

	if req.CapsterID != nil && *req.CapsterID <= 0 {
		return fmt.Errorf("%w: capsterID must be positive", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date cannot be empty", ErrInvalidInput)
	}

	if req.Hour != nil && (*req.Hour < domain.MinHour || *req.Hour > domain.MaxHour) {
		return fmt.Errorf("%w: hour must be between %d and %d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.PaymentID != nil && *req.PaymentID <= 0 {
		return fmt.Errorf("%w: paymentID must be positive", ErrInvalidInput)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Rating != nil && (*req.Rating < domain.MinRating || *req.Rating > domain.MaxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if req.Image != nil && len(*req.Image) > domain.MaxImageLength {
		return fmt.Errorf("%w: image must be at most %d characters", ErrInvalidInput, domain.MaxImageLength)
	}

	if req.HaircutType != nil && len(*req.HaircutType) > domain.MaxHaircutLength {
		return fmt.Errorf("%w: haircut type must be at most %d characters", ErrInvalidInput, domain.MaxHaircutLength)
	}

	return nil
}
