package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/pkg/ptr"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

func TestDayScheduleFor_FillsEveryField(t *testing.T) {
	def := DefaultDaySchedule()

	capsters := []*Capster{
		{},
		{Schedule: DefaultSchedule()},
		{Schedule: Schedule{Monday: {IsActive: true}}},
		{Schedule: Schedule{Friday: {WorkingRange: types.MustParseTimeRange("10:00 - 20:00")}}},
	}

	for _, c := range capsters {
		for _, d := range Weekdays() {
			day := DayScheduleFor(c, d)
			assert.False(t, day.WorkingRange.IsZero(), "working range of %s", d.Key())
			assert.False(t, day.BreakRange.IsZero(), "break range of %s", d.Key())
			assert.NoError(t, day.WorkingRange.Validate())
			assert.NoError(t, day.BreakRange.Validate())
		}
	}

	partial := DayScheduleFor(capsters[2], Monday)
	assert.True(t, partial.IsActive)
	assert.Equal(t, def.WorkingRange, partial.WorkingRange)
	assert.Equal(t, def.BreakRange, partial.BreakRange)
}

func TestMergeSchedule_FieldLevelOverlay(t *testing.T) {
	working := types.MustParseTimeRange("09:00 - 17:00")

	merged := MergeSchedule(DefaultSchedule(), ScheduleOverride{
		Monday:  {IsActive: ptr.Ptr(true), WorkingRange: &working},
		Tuesday: {IsActive: ptr.Ptr(true)},
	})

	assert.Equal(t, DaySchedule{
		IsActive:     true,
		WorkingRange: working,
		BreakRange:   types.MustParseTimeRange("12:00 - 13:00"),
	}, merged[Monday])

	assert.True(t, merged[Tuesday].IsActive)
	assert.Equal(t, types.MustParseTimeRange("08:00 - 17:00"), merged[Tuesday].WorkingRange)

	for _, d := range []Weekday{Wednesday, Thursday, Friday, Saturday, Sunday} {
		assert.Equal(t, DefaultDaySchedule(), merged[d], d.Key())
	}
}

func TestMergeSchedule_KeepsBaseForOmittedDays(t *testing.T) {
	base := MergeSchedule(DefaultSchedule(), ScheduleOverride{
		Saturday: {IsActive: ptr.Ptr(true), BreakRange: ptr.Ptr(types.MustParseTimeRange("14:00 - 15:00"))},
	})

	merged := MergeSchedule(base, ScheduleOverride{Sunday: {IsActive: ptr.Ptr(true)}})

	assert.Equal(t, base[Saturday], merged[Saturday])
	assert.True(t, merged[Sunday].IsActive)
	assert.Equal(t, base, MergeSchedule(base, nil))
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"2024-06-03", Monday},
		{"2024-06-05", Wednesday},
		{"2024-06-08", Saturday},
		{"2024-06-09", Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse(DateFormat, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayOf(date))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for _, d := range Weekdays() {
		got, ok := ParseWeekday(d.Key())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := ParseWeekday("monday")
	assert.False(t, ok)
}

func TestDaySchedule_Validate(t *testing.T) {
	day := DaySchedule{
		IsActive:     true,
		WorkingRange: types.MustParseTimeRange("09:00 - 17:00"),
		BreakRange:   types.MustParseTimeRange("18:00 - 19:00"),
	}
	assert.ErrorIs(t, day.Validate(), ErrInvalidSchedule)

	day.IsActive = false
	assert.NoError(t, day.Validate())

	assert.NoError(t, DefaultSchedule().Validate())
}
