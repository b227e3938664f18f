package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-CapsterBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Отсутствующее поле (или null) не меняет значение
type UpdateBookingRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CapsterID   *int64  `json:"capster_id,omitempty"`
	Date        *string `json:"date,omitempty"` // "2025-10-15"
	Hour        *int    `json:"hour,omitempty"`
	ServiceID   *int64  `json:"service_id,omitempty"`
	PaymentID   *int64  `json:"payment_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
	Image       *string `json:"image,omitempty"`
	HaircutType *string `json:"haircut_type,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CapsterID   int64   `json:"capster_id"`
	Date        string  `json:"date"`
	Hour        int     `json:"hour"`
	ServiceID   int64   `json:"service_id"`
	PaymentID   int64   `json:"payment_id"`
	Status      string  `json:"status"`
	Rating      *int    `json:"rating,omitempty"`
	Image       *string `json:"image,omitempty"`
	HaircutType string  `json:"haircut_type"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:   bookingID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CapsterID:   r.CapsterID,
		Hour:        r.Hour,
		ServiceID:   r.ServiceID,
		PaymentID:   r.PaymentID,
		Rating:      r.Rating,
		Image:       r.Image,
		HaircutType: r.HaircutType,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Email:       resp.Email,
		Phone:       resp.Phone,
		CapsterID:   resp.CapsterID,
		Date:        resp.Date.Format(domain.DateFormat),
		Hour:        resp.Hour,
		ServiceID:   resp.ServiceID,
		PaymentID:   resp.PaymentID,
		Status:      resp.Status,
		Rating:      resp.Rating,
		Image:       resp.Image,
		HaircutType: resp.HaircutType,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
