package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

// ErrInvalidSchedule returned when a day schedule breaks its own ranges
var ErrInvalidSchedule = errors.New("domain: invalid schedule")

// Weekday day of the capster work week, Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek size of the fixed weekday set
const DaysInWeek = 7

var weekdayKeys = [DaysInWeek]string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu", "minggu"}

// Weekdays returns the fixed ordered set of weekdays
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Key returns the storage/API key of the weekday
func (d Weekday) Key() string {
	if !d.IsValid() {
		return ""
	}
	return weekdayKeys[d]
}

// IsValid returns true for Monday..Sunday
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday maps an API key ("senin".."minggu") to a Weekday
func ParseWeekday(key string) (Weekday, bool) {
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), true
		}
	}
	return 0, false
}

// WeekdayOf converts a calendar date into the capster weekday
func WeekdayOf(date time.Time) Weekday {
	// time.Weekday starts from Sunday
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// DaySchedule availability window of a single weekday
type DaySchedule struct {
	IsActive     bool
	WorkingRange types.TimeRange
	BreakRange   types.TimeRange
}

// Validate checks that ranges are well formed and the break lies within working hours of an active day
func (d DaySchedule) Validate() error {
	if err := d.WorkingRange.Validate(); err != nil {
		return fmt.Errorf("%w: working range: %v", ErrInvalidSchedule, err)
	}
	if err := d.BreakRange.Validate(); err != nil {
		return fmt.Errorf("%w: break range: %v", ErrInvalidSchedule, err)
	}
	if d.IsActive && !d.WorkingRange.Contains(d.BreakRange) {
		return fmt.Errorf("%w: break %s is outside working hours %s", ErrInvalidSchedule, d.BreakRange, d.WorkingRange)
	}
	return nil
}

// DefaultDaySchedule day used for every field a capster never set
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		IsActive:     false,
		WorkingRange: types.MustParseTimeRange("08:00 - 17:00"),
		BreakRange:   types.MustParseTimeRange("12:00 - 13:00"),
	}
}

// Schedule weekly schedule indexed by Weekday
type Schedule [DaysInWeek]DaySchedule

// DefaultSchedule returns a schedule with every day set to DefaultDaySchedule
func DefaultSchedule() Schedule {
	var s Schedule
	for _, d := range Weekdays() {
		s[d] = DefaultDaySchedule()
	}
	return s
}

// Day returns the schedule of a weekday with defaults filled in for unset fields
func (s Schedule) Day(d Weekday) DaySchedule {
	def := DefaultDaySchedule()
	if !d.IsValid() {
		return def
	}
	day := s[d]
	if day.WorkingRange.IsZero() {
		day.WorkingRange = def.WorkingRange
	}
	if day.BreakRange.IsZero() {
		day.BreakRange = def.BreakRange
	}
	return day
}

// Validate validates every day
func (s Schedule) Validate() error {
	for _, d := range Weekdays() {
		if err := s.Day(d).Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.Key(), err)
		}
	}
	return nil
}

// DayScheduleOverride partial day schedule, nil fields are not set
type DayScheduleOverride struct {
	IsActive     *bool
	WorkingRange *types.TimeRange
	BreakRange   *types.TimeRange
}

// ScheduleOverride partial weekly schedule supplied by a caller
type ScheduleOverride map[Weekday]DayScheduleOverride

// Apply overlays the override onto the day field by field
func (o DayScheduleOverride) Apply(day DaySchedule) DaySchedule {
	if o.IsActive != nil {
		day.IsActive = *o.IsActive
	}
	if o.WorkingRange != nil && !o.WorkingRange.IsZero() {
		day.WorkingRange = *o.WorkingRange
	}
	if o.BreakRange != nil && !o.BreakRange.IsZero() {
		day.BreakRange = *o.BreakRange
	}
	return day
}

// MergeSchedule overlays overrides onto base for the fixed set of weekdays
// Days and fields absent from the override keep the base value (with defaults filled)
func MergeSchedule(base Schedule, override ScheduleOverride) Schedule {
	var merged Schedule
	for _, d := range Weekdays() {
		day := base.Day(d)
		if o, ok := override[d]; ok {
			day = o.Apply(day)
		}
		merged[d] = day
	}
	return merged
}

// Capster barber with a weekly schedule
type Capster struct {
	ID          int64
	Username    string
	Specialty   string
	Description string
	Phone       string
	Email       string
	Address     string
	Avatar      string
	Rating      float64
	Album       []string
	Schedule    Schedule

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted returns true if the capster was soft-deleted
func (c *Capster) IsDeleted() bool {
	return c.DeletedAt != nil
}

// DayScheduleFor returns the schedule of the capster for a weekday, never with missing fields
func DayScheduleFor(c *Capster, d Weekday) DaySchedule {
	return c.Schedule.Day(d)
}

// CapstersFilter фильтр списка капстеров (поиск по подстроке без учета регистра)
type CapstersFilter struct {
	Username  *string
	Specialty *string
	Email     *string
	Phone     *string
	Address   *string
	Rating    *float64 // exact match
	Page      int
	Limit     int
}

// Offset returns the row offset of the page
func (f CapstersFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
