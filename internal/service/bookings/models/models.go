package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
// Все поля опциональны; границы периода включительно
type ListBookingsRequest struct {
	DateFrom  *time.Time `json:"dateFrom,omitempty"`
	DateTo    *time.Time `json:"dateTo,omitempty"`
	CapsterID *int64     `json:"capsterId,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CapsterID: r.CapsterID,
	}
	if r.DateFrom != nil {
		from := domain.TruncateDay(*r.DateFrom)
		filter.DateFrom = &from
	}
	if r.DateTo != nil {
		to := domain.TruncateDay(*r.DateTo)
		filter.DateTo = &to
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	return filter, nil
}

// Response модели

// RefResponse ссылка на связанную сущность с отображаемым именем
// Name == nil, если сущность удалена
type RefResponse struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// ServiceRefResponse ссылка на услугу с ценой
type ServiceRefResponse struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"` // "2025-10-15"
	Hour        int     `json:"hour"`
	Status      string  `json:"status"`
	Rating      *int    `json:"rating,omitempty"`
	Image       *string `json:"image,omitempty"`
	HaircutType string  `json:"haircut_type"`

	// Денормализованные данные
	Capster RefResponse        `json:"capster"`
	Payment RefResponse        `json:"payment"`
	Service ServiceRefResponse `json:"service"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainDetails конвертирует domain модель в DTO
func FromDomainDetails(b *domain.BookingDetails) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        b.Date.Format(domain.DateFormat),
		Hour:        b.Hour,
		Status:      string(b.Status),
		Rating:      b.Rating,
		Image:       b.Image,
		HaircutType: b.HaircutType,
		Capster:     RefResponse{ID: b.CapsterID, Name: b.CapsterName},
		Payment:     RefResponse{ID: b.PaymentID, Name: b.PaymentName},
		Service:     ServiceRefResponse{ID: b.ServiceID, Name: b.ServiceName, Price: b.ServicePrice},
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainDetailsList конвертирует список domain моделей в DTO
func FromDomainDetailsList(bookings []domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainDetails(&bookings[i]))
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
