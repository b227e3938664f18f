package capsters

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
)

// Service сервис для работы с капстерами
type Service struct {
	capsterRepo CapsterRepository
	slotsCache  SlotsCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса капстеров
func NewService(
	capsterRepo CapsterRepository,
	slotsCache SlotsCache,
	logger Logger,
) *Service {
	return &Service{
		capsterRepo: capsterRepo,
		slotsCache:  slotsCache,
		logger:      logger,
	}
}

// Create регистрирует капстера
// username, email и телефон должны быть свободны среди неудаленных капстеров
// Переданное расписание накладывается на расписание по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateCapsterRequest) (*models.CapsterResponse, error) {
	s.logger.Info("Create: registering capster username=%s", req.Username)

	// 1. Валидируем входные данные
	if err := validateIdentity(req.Username, req.Email, req.Phone); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if strings.TrimSpace(req.Specialty) == "" || strings.TrimSpace(req.Description) == "" {
		s.logger.Warn("Create: validation failed: specialty and description are required")
		return nil, fmt.Errorf("%w: specialty and description are required", ErrInvalidInput)
	}

	// 2. Собираем расписание
	schedule, err := buildSchedule(domain.DefaultSchedule(), req.Schedule)
	if err != nil {
		s.logger.Warn("Create: invalid schedule: %v", err)
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	phone := strings.TrimSpace(req.Phone)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 3. Проверяем уникальность по тем же значениям, что сохраним
	exists, err := s.capsterRepo.ExistsByIdentity(ctx, username, email, phone, nil)
	if err != nil {
		s.logger.Error("Create: failed to check identity: %v", err)
		return nil, fmt.Errorf("%w: failed to check identity: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: username=%s, email=%s or phone=%s already in use", username, email, phone)
		return nil, ErrCapsterAlreadyExists
	}

	// 4. Создаем капстера
	created, err := s.capsterRepo.Create(ctx, &domain.Capster{
		Username:    username,
		Specialty:   req.Specialty,
		Description: req.Description,
		Phone:       phone,
		Email:       email,
		Address:     req.Address,
		Avatar:      req.Avatar,
		Album:       req.Album,
		Schedule:    schedule,
	})
	if err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterAlreadyExists) {
			s.logger.Warn("Create: identity taken concurrently for username=%s", username)
			return nil, ErrCapsterAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created capster id=%d", created.ID)
	return models.FromDomainCapster(created), nil
}

// GetByID получает капстера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CapsterResponse, error) {
	s.logger.Info("GetByID: fetching capster id=%d", id)

	capster, err := s.getCapster(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched capster id=%d", id)
	return models.FromDomainCapster(capster), nil
}

// List получает страницу капстеров с фильтрами; сначала новые
func (s *Service) List(ctx context.Context, req *models.ListCapstersRequest) (*models.CapsterListResponse, error) {
	filter := req.ToDomainFilter()
	s.logger.Info("List: fetching capsters page=%d, limit=%d", filter.Page, filter.Limit)

	capsters, total, err := s.capsterRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d capsters", len(capsters), total)
	return &models.CapsterListResponse{
		Capsters:   models.FromDomainCapsterList(capsters),
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// ListAll получает всех неудаленных капстеров без пагинации
func (s *Service) ListAll(ctx context.Context) (*models.CapsterListResponse, error) {
	s.logger.Info("ListAll: fetching all capsters")

	capsters, _, err := s.capsterRepo.List(ctx, domain.CapstersFilter{})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d capsters", len(capsters))
	return &models.CapsterListResponse{Capsters: models.FromDomainCapsterList(capsters)}, nil
}

// Update обновляет переданные поля капстера
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCapsterRequest) (*models.CapsterResponse, error) {
	s.logger.Info("Update: updating capster id=%d", id)

	capster, err := s.getCapster(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	// 1. Применяем переданные поля
	if req.Username != nil {
		capster.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		capster.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		capster.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Specialty != nil {
		capster.Specialty = *req.Specialty
	}
	if req.Description != nil {
		capster.Description = *req.Description
	}
	if req.Avatar != nil {
		capster.Avatar = *req.Avatar
	}
	if req.Address != nil {
		capster.Address = *req.Address
	}
	if req.Album != nil {
		capster.Album = req.Album
	}
	if req.Schedule != nil {
		schedule, err := buildSchedule(domain.DefaultSchedule(), req.Schedule)
		if err != nil {
			s.logger.Warn("Update: invalid schedule for capster id=%d: %v", id, err)
			return nil, err
		}
		capster.Schedule = schedule
	}

	// 2. Проверяем итоговые значения
	if err := validateIdentity(capster.Username, capster.Email, capster.Phone); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 3. Уникальность проверяем только для изменившихся идентификаторов
	if req.Username != nil || req.Email != nil || req.Phone != nil {
		exists, err := s.capsterRepo.ExistsByIdentity(ctx,
			valueIfSet(req.Username, capster.Username),
			valueIfSet(req.Email, capster.Email),
			valueIfSet(req.Phone, capster.Phone),
			&id)
		if err != nil {
			s.logger.Error("Update: failed to check identity: %v", err)
			return nil, fmt.Errorf("%w: failed to check identity: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Warn("Update: identity of capster id=%d already in use", id)
			return nil, ErrCapsterAlreadyExists
		}
	}

	if err := s.capsterRepo.Update(ctx, capster); err != nil {
		switch {
		case errors.Is(err, capsterRepo.ErrCapsterNotFound):
			return nil, ErrCapsterNotFound
		case errors.Is(err, capsterRepo.ErrCapsterAlreadyExists):
			return nil, ErrCapsterAlreadyExists
		}
		s.logger.Error("Update: repository error for capster id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Расписание влияет на свободные часы
	if req.Schedule != nil {
		if err := s.slotsCache.Invalidate(ctx, id); err != nil {
			s.logger.Warn("Update: failed to invalidate slots cache for capster=%d: %v", id, err)
		}
	}

	updated, err := s.getCapster(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated capster id=%d", id)
	return models.FromDomainCapster(updated), nil
}

// Delete мягко удаляет капстера; его бронирования и отчеты сохраняют ссылку на него
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting capster id=%d", id)

	if err := s.capsterRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			s.logger.Warn("Delete: capster id=%d not found", id)
			return ErrCapsterNotFound
		}
		s.logger.Error("Delete: repository error for capster id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.slotsCache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("Delete: failed to invalidate slots cache for capster=%d: %v", id, err)
	}

	s.logger.Info("Delete: successfully deleted capster id=%d", id)
	return nil
}

func (s *Service) getCapster(ctx context.Context, op string, id int64) (*domain.Capster, error) {
	capster, err := s.capsterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			s.logger.Warn("%s: capster id=%d not found", op, id)
			return nil, ErrCapsterNotFound
		}
		s.logger.Error("%s: repository error for capster id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return capster, nil
}

func buildSchedule(base domain.Schedule, req models.ScheduleRequest) (domain.Schedule, error) {
	override, err := req.ToDomainOverride()
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	schedule := domain.MergeSchedule(base, override)
	if err := schedule.Validate(); err != nil {
		return domain.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return schedule, nil
}

func validateIdentity(username, email, phone string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(username) > domain.MaxNameLength {
		return fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil || len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return nil
}

// valueIfSet возвращает value, если поле передано, иначе пустую строку (не участвует в проверке)
func valueIfSet(field *string, value string) string {
	if field == nil {
		return ""
	}
	return value
}
