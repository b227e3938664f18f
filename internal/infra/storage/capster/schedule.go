package capster

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

// dayRecord расписание дня в JSONB-колонке schedule
type dayRecord struct {
	IsActive     bool            `json:"is_active"`
	JamKerja     types.TimeRange `json:"jam_kerja"`
	JamIstirahat types.TimeRange `json:"jam_istirahat"`
}

func encodeSchedule(s domain.Schedule) ([]byte, error) {
	doc := make(map[string]dayRecord, domain.DaysInWeek)
	for _, d := range domain.Weekdays() {
		day := s.Day(d)
		doc[d.Key()] = dayRecord{
			IsActive:     day.IsActive,
			JamKerja:     day.WorkingRange,
			JamIstirahat: day.BreakRange,
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchedule, err)
	}
	return data, nil
}

// decodeSchedule читает документ расписания; отсутствующие дни и поля берутся по умолчанию
func decodeSchedule(data []byte) (domain.Schedule, error) {
	schedule := domain.DefaultSchedule()
	if len(data) == 0 {
		return schedule, nil
	}

	var doc map[string]dayRecord
	if err := json.Unmarshal(data, &doc); err != nil {
		return schedule, fmt.Errorf("%w: %v", ErrSchedule, err)
	}

	var stored domain.Schedule
	for key, rec := range doc {
		d, ok := domain.ParseWeekday(key)
		if !ok {
			continue
		}
		stored[d] = domain.DaySchedule{
			IsActive:     rec.IsActive,
			WorkingRange: rec.JamKerja,
			BreakRange:   rec.JamIstirahat,
		}
	}

	for _, d := range domain.Weekdays() {
		schedule[d] = stored.Day(d)
	}
	return schedule, nil
}
