package domain

import (
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

// AvailableSlot represents an hour a capster can still take on a given date
type AvailableSlot struct {
	Hour  int
	Start types.TimeString
	End   types.TimeString
}

// NewAvailableSlot builds the one-hour slot starting at hour
func NewAvailableSlot(hour int) AvailableSlot {
	end := types.HourTimeString(hour + 1)
	if hour+1 >= 24 {
		end = "23:59"
	}
	return AvailableSlot{
		Hour:  hour,
		Start: types.HourTimeString(hour),
		End:   end,
	}
}
