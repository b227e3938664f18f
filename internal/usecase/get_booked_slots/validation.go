package get_booked_slots

import (
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CapsterID <= 0 {
		return fmt.Errorf("%w: capsterID must be positive", ErrInvalidInput)
	}

	for _, s := range req.Statuses {
		if !s.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
		}
	}

	return nil
}

// statusesOrDefault возвращает активные статусы, если фильтр не задан
func statusesOrDefault(statuses []domain.BookingStatus) []domain.BookingStatus {
	if len(statuses) == 0 {
		return domain.ActiveStatuses
	}
	return statuses
}
