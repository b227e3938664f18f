package booking_summary

import (
	bookingSummary "github.com/m04kA/SMC-CapsterBooking/internal/usecase/booking_summary"
)

// SummaryResponse HTTP response model дашборда
type SummaryResponse struct {
	CapsterActive     int            `json:"capster_active"`
	TotalBookingToday int            `json:"total_booking_today"`
	List              []CapsterQueue `json:"list"`
}

// CapsterQueue очередь капстера на сегодня
type CapsterQueue struct {
	Capster string       `json:"capster"`
	Booking []QueueEntry `json:"booking"`
}

// QueueEntry позиция в очереди
type QueueEntry struct {
	Customer  string `json:"customer"`
	Jam       string `json:"jam"`
	AntrianKe int    `json:"antrian_ke"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingSummary.Response) *SummaryResponse {
	s := resp.Summary

	list := make([]CapsterQueue, len(s.Queues))
	for i, q := range s.Queues {
		entries := make([]QueueEntry, len(q.Queue))
		for j, e := range q.Queue {
			entries[j] = QueueEntry{Customer: e.Customer, Jam: e.HourLabel, AntrianKe: e.Position}
		}
		list[i] = CapsterQueue{Capster: q.Capster, Booking: entries}
	}

	return &SummaryResponse{
		CapsterActive:     s.CapsterActiveCount,
		TotalBookingToday: s.TotalBookingsToday,
		List:              list,
	}
}
