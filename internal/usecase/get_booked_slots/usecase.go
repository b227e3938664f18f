package get_booked_slots

import (
	"context"
	"errors"
	"fmt"

	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
)

// UseCase use case для получения занятых слотов капстера
type UseCase struct {
	bookingRepo BookingRepository
	capsterRepo CapsterRepository
	slotsCache  SlotsCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	capsterRepo CapsterRepository,
	slotsCache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		capsterRepo: capsterRepo,
		slotsCache:  slotsCache,
		logger:      logger,
	}
}

// Execute возвращает занятые слоты капстера
// Сначала читает кэш; ошибки кэша не ломают запрос, а только логируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedSlots: capster=%d, statuses=%v", req.CapsterID, req.Statuses)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookedSlots: validation failed: %v", err)
		return nil, err
	}

	statuses := statusesOrDefault(req.Statuses)

	if _, err := uc.capsterRepo.GetByID(ctx, req.CapsterID); err != nil {
		if errors.Is(err, capsterRepo.ErrCapsterNotFound) {
			uc.logger.Warn("GetBookedSlots: capster id=%d not found", req.CapsterID)
			return nil, ErrCapsterNotFound
		}
		uc.logger.Error("GetBookedSlots: failed to get capster id=%d: %v", req.CapsterID, err)
		return nil, fmt.Errorf("%w: failed to get capster: %v", ErrInternal, err)
	}

	cached, ok, err := uc.slotsCache.Get(ctx, req.CapsterID, statuses)
	if err != nil {
		uc.logger.Warn("GetBookedSlots: cache read failed for capster=%d: %v", req.CapsterID, err)
	}
	if ok {
		return &Response{CapsterID: req.CapsterID, Slots: cached}, nil
	}

	// Поколение берется до чтения БД: запись, прошедшая после него, отменит сохранение в кэш
	gen, genErr := uc.slotsCache.Generation(ctx, req.CapsterID)
	if genErr != nil {
		uc.logger.Warn("GetBookedSlots: cache generation read failed for capster=%d: %v", req.CapsterID, genErr)
	}

	slots, err := uc.bookingRepo.GetBookedSlots(ctx, req.CapsterID, statuses)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to get booked slots for capster=%d: %v", req.CapsterID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	if genErr == nil {
		if err := uc.slotsCache.Set(ctx, req.CapsterID, gen, statuses, slots); err != nil {
			uc.logger.Warn("GetBookedSlots: cache write failed for capster=%d: %v", req.CapsterID, err)
		}
	}

	uc.logger.Info("GetBookedSlots: found %d booked slots for capster=%d", len(slots), req.CapsterID)

	return &Response{CapsterID: req.CapsterID, Slots: slots}, nil
}
