package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CapsterBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CapsterID   int64   `json:"capster_id"`
	Date        string  `json:"date"` // "2025-10-15"
	Hour        int     `json:"hour"` // 0..23
	ServiceID   int64   `json:"service_id"`
	PaymentID   int64   `json:"payment_id"`
	HaircutType string  `json:"haircut_type"`
	Image       *string `json:"image,omitempty"`
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CapsterID:   r.CapsterID,
		Date:        date,
		Hour:        r.Hour,
		ServiceID:   r.ServiceID,
		PaymentID:   r.PaymentID,
		HaircutType: r.HaircutType,
		Image:       r.Image,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
