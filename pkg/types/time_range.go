package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном диапазоне времени
	ErrInvalidTimeRange = errors.New("invalid time range")
)

const rangeSeparator = " - "

// TimeRange полуоткрытый интервал [Start, End) внутри суток
// В JSON и БД хранится строкой "08:00 - 17:00"
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange создает диапазон и проверяет, что Start < End
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// ParseTimeRange парсит строку вида "08:00 - 17:00" (пробелы вокруг дефиса необязательны)
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	end, err := NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	return NewTimeRange(start, end)
}

// MustParseTimeRange как ParseTimeRange, но паникует при ошибке
// Используется только для констант
func MustParseTimeRange(s string) TimeRange {
	r, err := ParseTimeRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate проверяет формат границ и что Start строго раньше End
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, r.Start, r.End)
	}
	return nil
}

// IsZero возвращает true, если диапазон не задан
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// String возвращает "HH:MM - HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + rangeSeparator + r.End.String()
}

// ContainsHour возвращает true, если часовой слот [hour:00, hour+1:00) целиком внутри диапазона
func (r TimeRange) ContainsHour(hour int) bool {
	slotStart := hour * 60
	slotEnd := slotStart + 60
	return r.Start.Minutes() <= slotStart && slotEnd <= r.End.Minutes()
}

// OverlapsHour возвращает true, если часовой слот [hour:00, hour+1:00) пересекается с диапазоном
// Граничные случаи (слот заканчивается ровно в начале диапазона) пересечением не считаются
func (r TimeRange) OverlapsHour(hour int) bool {
	slotStart := hour * 60
	slotEnd := slotStart + 60
	return slotStart < r.End.Minutes() && slotEnd > r.Start.Minutes()
}

// Contains возвращает true, если other целиком внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.IsBefore(r.Start) && !other.End.IsAfter(r.End)
}

// MarshalJSON сериализует диапазон строкой
func (r TimeRange) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON парсит диапазон из строки, пустая строка означает "не задан"
func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if strings.TrimSpace(s) == "" {
		*r = TimeRange{}
		return nil
	}
	parsed, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
