package domain

// Report sentinels used when a reference cannot be resolved
const (
	UnresolvedName       = "-"
	NoPaymentMethodLabel = "Tanpa Metode"
	NoCapsterLabel       = "Tanpa Capster"
	UnknownCapsterLabel  = "Unknown"
)

// Business validation constants
const (
	MinHour          = 0
	MaxHour          = 23
	MinRating        = 0
	MaxRating        = 5
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxPhoneLength   = 20
	MaxHaircutLength = 100
	MaxImageLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusWaiting,
	StatusConfirmed,
	StatusInService,
}

// TerminalStatuses statuses that free a slot
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
