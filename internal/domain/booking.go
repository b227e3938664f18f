package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusWaiting   BookingStatus = "Menunggu"
	StatusConfirmed BookingStatus = "Di Konfirmasi"
	StatusInService BookingStatus = "Sedang Di Layani"
	StatusCompleted BookingStatus = "Selesai"
	StatusCancelled BookingStatus = "Dibatalkan"
)

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusWaiting, StatusConfirmed, StatusInService, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive returns true if a booking in this status still occupies its slot
func (s BookingStatus) IsActive() bool {
	return s == StatusWaiting || s == StatusConfirmed || s == StatusInService
}

// IsTerminal returns true for Completed and Cancelled
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking represents a haircut appointment for a single (capster, date, hour) slot
type Booking struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	CapsterID   int64
	Date        time.Time
	Hour        int
	ServiceID   int64
	PaymentID   int64
	Status      BookingStatus
	Rating      *int
	Image       *string
	HaircutType string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Occupies returns true if the booking is active and holds the given slot
func (b *Booking) Occupies(capsterID int64, date time.Time, hour int) bool {
	return b.IsActive() && b.CapsterID == capsterID && b.Hour == hour && SameDay(b.Date, date)
}

// BookedSlot is a taken (date, hour) pair of a capster
type BookedSlot struct {
	Date   time.Time
	Hour   int
	Status BookingStatus
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CapsterID *int64          // опционально
	DateFrom  *time.Time      // включительно, nil - без ограничения
	DateTo    *time.Time      // включительно, nil - без ограничения
	Date      *time.Time      // конкретный день
	Hour      *int            // конкретный час
	Email     *string         // для защиты от повторной отправки
	Statuses  []BookingStatus // пустой - любые статусы
}

// BookingDetails booking with resolved references, used by reports and the booking detail view
// Nil name means the reference could not be resolved
type BookingDetails struct {
	Booking
	CapsterName  *string
	PaymentName  *string
	ServiceName  *string
	ServicePrice *int64
}

// SameDay compares two timestamps by calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TruncateDay returns midnight of t in UTC
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
