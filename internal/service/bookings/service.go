package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	bookingRepo BookingRepository
	slotsCache  SlotsCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotsCache SlotsCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotsCache:  slotsCache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID с именами капстера, способа оплаты и услуги
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainDetails(booking), nil
}

// List получает бронирования с фильтрацией по периоду, капстеру и статусу
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования за период: указать DateFrom и DateTo
// - Только начиная с даты: указать только DateFrom
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.DateFrom != nil {
		logMsg += fmt.Sprintf(", from=%s", req.DateFrom.Format(domain.DateFormat))
	}
	if req.DateTo != nil {
		logMsg += fmt.Sprintf(", to=%s", req.DateTo.Format(domain.DateFormat))
	}
	if req.CapsterID != nil {
		logMsg += fmt.Sprintf(", capster=%d", *req.CapsterID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		s.logger.Warn("List: dateFrom is after dateTo")
		return nil, ErrInvalidTimeRange
	}

	bookings, err := s.bookingRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainDetailsList(bookings), nil
}

// Delete удаляет бронирование (физически) и освобождает слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found during deletion", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.slotsCache.Invalidate(ctx, booking.CapsterID); err != nil {
		s.logger.Warn("Delete: failed to invalidate slots cache for capster=%d: %v", booking.CapsterID, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
