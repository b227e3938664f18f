package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

// Request модель запроса на получение свободных часов капстера
type Request struct {
	CapsterID int64     // ID капстера
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных часов
type Response struct {
	Date      time.Time
	CapsterID int64
	DayOff    bool // капстер не работает в этот день недели
	Working   types.TimeRange
	Break     types.TimeRange
	Slots     []Slot
}

// Slot свободный часовой слот
type Slot struct {
	Hour      int
	StartTime types.TimeString
	EndTime   types.TimeString
}
