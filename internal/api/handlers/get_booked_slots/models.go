package get_booked_slots

import (
	"strings"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	getBookedSlots "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_booked_slots"
)

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	CapsterID int64        `json:"capster_id"`
	Slots     []BookedSlot `json:"slots"`
}

// BookedSlot занятый час
type BookedSlot struct {
	Date   string `json:"date"`
	Hour   int    `json:"hour"`
	Status string `json:"status"`
}

// ToUseCaseRequest статусы принимаются повтором параметра или через запятую
func ToUseCaseRequest(capsterID int64, rawStatuses []string) *getBookedSlots.Request {
	req := &getBookedSlots.Request{CapsterID: capsterID}
	for _, raw := range rawStatuses {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Statuses = append(req.Statuses, domain.BookingStatus(s))
			}
		}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	slots := make([]BookedSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = BookedSlot{
			Date:   s.Date.Format(domain.DateFormat),
			Hour:   s.Hour,
			Status: string(s.Status),
		}
	}
	return &BookedSlotsResponse{
		CapsterID: resp.CapsterID,
		Slots:     slots,
	}
}
