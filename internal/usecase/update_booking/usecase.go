package update_booking

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

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo       BookingRepository
	capsterRepo       CapsterRepository
	catalogRepo       CatalogRepository
	slotsCache        SlotsCache
	txManager         TransactionManager
	strictTransitions bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
// strictTransitions включает проверку смены статуса по таблице переходов
func NewUseCase(
	bookingRepo BookingRepository,
	capsterRepo CapsterRepository,
	catalogRepo CatalogRepository,
	slotsCache SlotsCache,
	txManager TransactionManager,
	strictTransitions bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		capsterRepo:       capsterRepo,
		catalogRepo:       catalogRepo,
		slotsCache:        slotsCache,
		txManager:         txManager,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

// Execute выполняет use case обновления бронирования
// Меняются только переданные поля. Если меняется слот (или бронь снова становится активной),
// слот проверяется заново так же, как при создании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result       *domain.Booking
		oldCapsterID int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Текущее бронирование с блокировкой строки
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return internalErr("failed to get booking", err)
		}
		oldCapsterID = current.CapsterID

		// 3. Смена статуса
		if req.Status != nil && uc.strictTransitions && !domain.CanTransition(current.Status, *req.Status) {
			uc.logger.Warn("UpdateBooking: transition %q -> %q is not allowed", current.Status, *req.Status)
			return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current.Status, *req.Status)
		}

		updated := merge(current, req)

		// 4. Ссылки на справочники проверяем только если они меняются
		if err := uc.checkReferences(txCtx, req); err != nil {
			return err
		}

		// 5. Повторная проверка слота
		if needsSlotCheck(current, updated) {
			if err := uc.checkSlot(txCtx, updated); err != nil {
				return err
			}
		}

		// 6. Сохранение
		if err := uc.bookingRepo.Update(txCtx, updated); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("UpdateBooking: slot capster=%d date=%s hour=%d taken concurrently",
					updated.CapsterID, updated.Date.Format(domain.DateFormat), updated.Hour)
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return internalErr("failed to update booking", err)
		}

		// 7. Перечитываем, чтобы вернуть updated_at из БД
		saved, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to reload booking id=%d: %v", req.BookingID, err)
			return internalErr("failed to reload booking", err)
		}

		result = saved
		return nil
	})

	if err != nil {
		// Повторы исчерпаны: слот держит конкурентная транзакция
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("UpdateBooking: booking id=%d lost to concurrent transaction: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		}
		return nil, err
	}

	if err := uc.slotsCache.Invalidate(ctx, oldCapsterID, result.CapsterID); err != nil {
		uc.logger.Warn("UpdateBooking: failed to invalidate slots cache: %v", err)
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, status=%s", result.ID, result.Status)

	return toResponse(result), nil
}

func (uc *UseCase) checkReferences(ctx context.Context, req *Request) error {
	if req.CapsterID != nil {
		if _, err := uc.capsterRepo.GetByID(ctx, *req.CapsterID); err != nil {
			if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
				uc.logger.Warn("UpdateBooking: capster id=%d not found", *req.CapsterID)
				return ErrCapsterNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get capster id=%d: %v", *req.CapsterID, err)
			return fmt.Errorf("%w: failed to get capster: %v", ErrInternal, err)
		}
	}

	if req.ServiceID != nil {
		if _, err := uc.catalogRepo.GetServiceByID(ctx, *req.ServiceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateBooking: service id=%d not found", *req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	if req.PaymentID != nil {
		if _, err := uc.catalogRepo.GetPaymentMethodByID(ctx, *req.PaymentID); err != nil {
			if errors.Is(err, catalogRepo.ErrPaymentMethodNotFound) {
				uc.logger.Warn("UpdateBooking: payment method id=%d not found", *req.PaymentID)
				return ErrPaymentMethodNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get payment method id=%d: %v", *req.PaymentID, err)
			return fmt.Errorf("%w: failed to get payment method: %v", ErrInternal, err)
		}
	}

	return nil
}

func (uc *UseCase) checkSlot(ctx context.Context, b *domain.Booking) error {
	capster, err := uc.capsterRepo.GetByID(ctx, b.CapsterID)
	if err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			uc.logger.Warn("UpdateBooking: capster id=%d not found", b.CapsterID)
			return ErrCapsterNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get capster id=%d: %v", b.CapsterID, err)
		return fmt.Errorf("%w: failed to get capster: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		CapsterID: ptr.Ptr(b.CapsterID),
		Date:      ptr.Ptr(b.Date),
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
		return internalErr("failed to get bookings", err)
	}

	// Сама бронь слот не занимает
	others := make([]*domain.Booking, 0, len(bookings))
	for _, existing := range bookings {
		if existing.ID != b.ID {
			others = append(others, existing)
		}
	}

	err = availability.IsBookable(capster, b.Date, b.Hour, b.Email, others)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availability.ErrDuplicateBooking):
		uc.logger.Warn("UpdateBooking: slot rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrDuplicateBooking, err)
	case errors.Is(err, availability.ErrSlotTaken):
		uc.logger.Warn("UpdateBooking: slot rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, availability.ErrInvalidHour):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Warn("UpdateBooking: slot rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrOutsideSchedule, err)
	}
}

// internalErr оставляет конфликт сериализации как есть, чтобы транзакция была повторена
func internalErr(msg string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

// needsSlotCheck - активная бронь переехала в другой слот или терминальная бронь снова стала активной
func needsSlotCheck(before, after *domain.Booking) bool {
	if !after.IsActive() {
		return false
	}
	if !before.IsActive() {
		return true
	}
	return before.CapsterID != after.CapsterID ||
		!domain.SameDay(before.Date, after.Date) ||
		before.Hour != after.Hour
}

// merge применяет переданные поля поверх текущего бронирования
func merge(current *domain.Booking, req *Request) *domain.Booking {
	updated := *current

	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updated.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updated.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.CapsterID != nil {
		updated.CapsterID = *req.CapsterID
	}
	if req.Date != nil {
		updated.Date = domain.TruncateDay(*req.Date)
	}
	if req.Hour != nil {
		updated.Hour = *req.Hour
	}
	if req.ServiceID != nil {
		updated.ServiceID = *req.ServiceID
	}
	if req.PaymentID != nil {
		updated.PaymentID = *req.PaymentID
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.Rating != nil {
		updated.Rating = ptr.Ptr(*req.Rating)
	}
	if req.Image != nil {
		updated.Image = ptr.Ptr(*req.Image)
	}
	if req.HaircutType != nil {
		updated.HaircutType = *req.HaircutType
	}

	return &updated
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
