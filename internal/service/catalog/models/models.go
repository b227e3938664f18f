package models

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"` // рупии, целое число
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CreatePaymentMethodRequest запрос на создание способа оплаты
type CreatePaymentMethodRequest struct {
	Name string `json:"name"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaymentMethodResponse ответ с данными способа оплаты
type PaymentMethodResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// PaymentMethodListResponse ответ со списком способов оплаты
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Image:       s.Image,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainPaymentMethod конвертирует domain модель в DTO
func FromDomainPaymentMethod(m *domain.PaymentMethod) *PaymentMethodResponse {
	if m == nil {
		return nil
	}
	return &PaymentMethodResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}

// FromDomainPaymentMethodList конвертирует список способов оплаты в DTO
func FromDomainPaymentMethodList(methods []*domain.PaymentMethod) *PaymentMethodListResponse {
	resp := &PaymentMethodListResponse{PaymentMethods: make([]PaymentMethodResponse, 0, len(methods))}
	for _, m := range methods {
		resp.PaymentMethods = append(resp.PaymentMethods, *FromDomainPaymentMethod(m))
	}
	return resp
}
