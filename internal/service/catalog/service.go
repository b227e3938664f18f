package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
)

// Service сервис справочников: услуги и способы оплаты
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%s, price=%d", req.Name, req.Price)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		s.logger.Warn("CreateService: invalid name %q", req.Name)
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Price < 0 {
		s.logger.Warn("CreateService: negative price %d", req.Price)
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}

	created, err := s.catalogRepo.CreateService(ctx, &domain.Service{
		Name:        name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("CreateService: service name=%s already exists", name)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: fetching service id=%d", id)

	service, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// ListServices получает все услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// CreatePaymentMethod создает способ оплаты
func (s *Service) CreatePaymentMethod(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethodResponse, error) {
	s.logger.Info("CreatePaymentMethod: creating payment method name=%s", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		s.logger.Warn("CreatePaymentMethod: invalid name %q", req.Name)
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	created, err := s.catalogRepo.CreatePaymentMethod(ctx, &domain.PaymentMethod{Name: name})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("CreatePaymentMethod: payment method name=%s already exists", name)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("CreatePaymentMethod: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePaymentMethod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePaymentMethod: successfully created payment method id=%d", created.ID)
	return models.FromDomainPaymentMethod(created), nil
}

// ListPaymentMethods получает все способы оплаты
func (s *Service) ListPaymentMethods(ctx context.Context) (*models.PaymentMethodListResponse, error) {
	methods, err := s.catalogRepo.ListPaymentMethods(ctx)
	if err != nil {
		s.logger.Error("ListPaymentMethods: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPaymentMethods - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPaymentMethods: fetched %d payment methods", len(methods))
	return models.FromDomainPaymentMethodList(methods), nil
}
