package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// Request модель запроса на обновление бронирования
// nil означает "поле не передано" - значение в бронировании не меняется
type Request struct {
	BookingID   int64
	Name        *string
	Email       *string
	Phone       *string
	CapsterID   *int64
	Date        *time.Time
	Hour        *int
	ServiceID   *int64
	PaymentID   *int64
	Status      *domain.BookingStatus
	Rating      *int
	Image       *string
	HaircutType *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	CapsterID   int64
	Date        time.Time
	Hour        int
	ServiceID   int64
	PaymentID   int64
	Status      string
	Rating      *int
	Image       *string
	HaircutType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
