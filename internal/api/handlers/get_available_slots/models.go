package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string          `json:"date"`
	CapsterID    int64           `json:"capster_id"`
	DayOff       bool            `json:"day_off"`
	JamKerja     string          `json:"jam_kerja,omitempty"`
	JamIstirahat string          `json:"jam_istirahat,omitempty"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный часовой слот
type AvailableSlot struct {
	Hour      int    `json:"hour"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Hour:      slot.Hour,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	out := &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		CapsterID: resp.CapsterID,
		DayOff:    resp.DayOff,
		Slots:     slots,
	}
	if !resp.Working.IsZero() {
		out.JamKerja = resp.Working.String()
	}
	if !resp.Break.IsZero() {
		out.JamIstirahat = resp.Break.String()
	}
	return out
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(capsterID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CapsterID: capsterID,
		Date:      date,
	}, nil
}
