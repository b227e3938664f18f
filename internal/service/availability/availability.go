package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// CheckSchedule проверяет час только по расписанию капстера (без учета бронирований)
func CheckSchedule(capster *domain.Capster, date time.Time, hour int) error {
	if hour < domain.MinHour || hour > domain.MaxHour {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}

	weekday := domain.WeekdayOf(date)
	day := domain.DayScheduleFor(capster, weekday)

	if !day.IsActive {
		return fmt.Errorf("%w: %s", ErrDayOff, weekday.Key())
	}

	if !day.WorkingRange.ContainsHour(hour) {
		return fmt.Errorf("%w: %02d:00 not in %s", ErrOutsideWorkingHours, hour, day.WorkingRange)
	}

	// Перерыв не бронируется никогда, даже если пересекается с часом частично
	if day.BreakRange.OverlapsHour(hour) {
		return fmt.Errorf("%w: %02d:00 overlaps %s", ErrBreakTime, hour, day.BreakRange)
	}

	return nil
}

// IsBookable проверяет, можно ли забронировать (capster, date, hour) для клиента с email
// existing - бронирования капстера на эту дату (статусы фильтруются здесь же)
// Пустой email отключает проверку повторной отправки
func IsBookable(capster *domain.Capster, date time.Time, hour int, email string, existing []*domain.Booking) error {
	if err := CheckSchedule(capster, date, hour); err != nil {
		return err
	}

	var taken bool
	for _, b := range existing {
		if !b.Occupies(capster.ID, date, hour) {
			continue
		}
		if email != "" && strings.EqualFold(b.Email, email) {
			return fmt.Errorf("%w: booking %d", ErrDuplicateBooking, b.ID)
		}
		taken = true
	}

	if taken {
		return fmt.Errorf("%w: %s %02d:00", ErrSlotTaken, date.Format(domain.DateFormat), hour)
	}

	return nil
}

// BookableHours возвращает часы, которые еще можно забронировать на дату
// Прошедшие даты не имеют слотов, для сегодняшнего дня отбрасываются уже начавшиеся часы
func BookableHours(capster *domain.Capster, date time.Time, existing []*domain.Booking, now time.Time) []int {
	if isDateInPast(date, now) {
		return []int{}
	}

	hours := make([]int, 0, domain.MaxHour+1)
	for hour := domain.MinHour; hour <= domain.MaxHour; hour++ {
		if domain.SameDay(date, now) && hour <= now.Hour() {
			continue
		}
		if err := IsBookable(capster, date, hour, "", existing); err != nil {
			continue
		}
		hours = append(hours, hour)
	}

	return hours
}

// AvailableSlots то же, что BookableHours, в виде слотов с началом и концом
func AvailableSlots(capster *domain.Capster, date time.Time, existing []*domain.Booking, now time.Time) []domain.AvailableSlot {
	hours := BookableHours(capster, date, existing, now)
	slots := make([]domain.AvailableSlot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, domain.NewAvailableSlot(h))
	}
	return slots
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
