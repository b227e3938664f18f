package domain

import "time"

// ReportRow ledger row of a completed booking
type ReportRow struct {
	No            int
	CustomerName  string
	Phone         string
	Date          string // YYYY-MM-DD
	Hour          int
	CapsterName   string
	PaymentMethod string
	ServiceName   string
	Price         int64
	Status        BookingStatus
}

// PaymentTotal per payment method bucket
type PaymentTotal struct {
	Method string
	Count  int
	Total  int64
}

// CapsterTotal per capster bucket
type CapsterTotal struct {
	Capster string
	Count   int
}

// Report aggregated completed bookings
// Totals keep the order in which buckets were first seen
type Report struct {
	Rows            []ReportRow
	TotalsByPayment []PaymentTotal
	TotalsByCapster []CapsterTotal
	GrandTotal      int64
}

// ReportPeriod inclusive date window, nil bound means unbounded
type ReportPeriod struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// QueueEntry a booking in a capster's daily queue
type QueueEntry struct {
	Customer  string
	HourLabel string // "H:00"
	Position  int    // 1-based
}

// CapsterQueue daily queue of a capster
type CapsterQueue struct {
	Capster string
	Queue   []QueueEntry
}

// BookingSummary dashboard view of today's bookings
type BookingSummary struct {
	CapsterActiveCount int
	TotalBookingsToday int
	Queues             []CapsterQueue
}
