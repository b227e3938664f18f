package get_booked_slots

import "github.com/m04kA/SMC-CapsterBooking/internal/domain"

// Request модель запроса занятых слотов капстера
type Request struct {
	CapsterID int64
	Statuses  []domain.BookingStatus // пусто - активные статусы
}

// Response занятые слоты капстера
type Response struct {
	CapsterID int64
	Slots     []domain.BookedSlot
}
