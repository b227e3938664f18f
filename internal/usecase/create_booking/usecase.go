package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/booking"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	catalogRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/availability"
	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
	"github.com/m04kA/SMC-CapsterBooking/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	capsterRepo  CapsterRepository
	catalogRepo  CatalogRepository
	slotsCache   SlotsCache
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capsterRepo CapsterRepository,
	catalogRepo CatalogRepository,
	slotsCache SlotsCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		capsterRepo:  capsterRepo,
		catalogRepo:  catalogRepo,
		slotsCache:   slotsCache,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка расписания и занятости выполняется в сериализуемой транзакции,
// окончательно слот захватывается атомарной вставкой в репозитории
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: capster=%d, date=%s, hour=%d, service=%d, payment=%d",
		req.CapsterID, req.Date.Format(domain.DateFormat), req.Hour, req.ServiceID, req.PaymentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.TruncateDay(req.Date)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Дата и час не должны быть в прошлом
	if err := validateDate(date, req.Hour, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем капстера
	capster, err := uc.capsterRepo.GetByID(ctx, req.CapsterID)
	if err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			uc.logger.Warn("CreateBooking: capster id=%d not found", req.CapsterID)
			return nil, ErrCapsterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get capster id=%d: %v", req.CapsterID, err)
		return nil, fmt.Errorf("%w: failed to get capster: %v", ErrInternal, err)
	}

	// 4. Проверяем услугу и способ оплаты
	if _, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetPaymentMethodByID(ctx, req.PaymentID); err != nil {
		if errors.Is(err, catalogRepo.ErrPaymentMethodNotFound) {
			uc.logger.Warn("CreateBooking: payment method id=%d not found", req.PaymentID)
			return nil, ErrPaymentMethodNotFound
		}
		uc.logger.Error("CreateBooking: failed to get payment method id=%d: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to get payment method: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования капстера на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			CapsterID: ptr.Ptr(req.CapsterID),
			Date:      &date,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Расписание, занятость и повторная отправка
		if err := availability.IsBookable(capster, date, req.Hour, email, bookings); err != nil {
			uc.logger.Warn("CreateBooking: slot rejected: %v", err)
			return uc.mapAvailabilityError(err)
		}

		// 5.3. Атомарная вставка: конкурентный запрос в тот же слот получит ErrSlotNotAvailable
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			Name:        strings.TrimSpace(req.Name),
			Email:       email,
			Phone:       strings.TrimSpace(req.Phone),
			CapsterID:   req.CapsterID,
			Date:        date,
			Hour:        req.Hour,
			ServiceID:   req.ServiceID,
			PaymentID:   req.PaymentID,
			Status:      domain.InitialStatus,
			Image:       req.Image,
			HaircutType: req.HaircutType,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot capster=%d date=%s hour=%d taken concurrently",
					req.CapsterID, date.Format(domain.DateFormat), req.Hour)
				uc.metrics.IncSlotConflict("concurrent")
				return ErrSlotNotAvailable
			}
			if txmanager.IsSerializationFailure(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Повторы исчерпаны: слот держит конкурентная транзакция
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: slot capster=%d date=%s hour=%d lost to concurrent transaction: %v",
				req.CapsterID, date.Format(domain.DateFormat), req.Hour, err)
			uc.metrics.IncSlotConflict("concurrent")
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(result.Status))
	if err := uc.slotsCache.Invalidate(ctx, result.CapsterID); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate slots cache for capster=%d: %v", result.CapsterID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}

func (uc *UseCase) mapAvailabilityError(err error) error {
	switch {
	case errors.Is(err, availability.ErrDuplicateBooking):
		uc.metrics.IncSlotConflict("duplicate")
		return fmt.Errorf("%w: %v", ErrDuplicateBooking, err)
	case errors.Is(err, availability.ErrSlotTaken):
		uc.metrics.IncSlotConflict("taken")
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, availability.ErrDayOff),
		errors.Is(err, availability.ErrOutsideWorkingHours),
		errors.Is(err, availability.ErrBreakTime):
		uc.metrics.IncSlotConflict("schedule")
		return fmt.Errorf("%w: %v", ErrOutsideSchedule, err)
	case errors.Is(err, availability.ErrInvalidHour):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		CapsterID:   b.CapsterID,
		Date:        b.Date,
		Hour:        b.Hour,
		ServiceID:   b.ServiceID,
		PaymentID:   b.PaymentID,
		Status:      string(b.Status),
		Rating:      b.Rating,
		Image:       b.Image,
		HaircutType: b.HaircutType,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
