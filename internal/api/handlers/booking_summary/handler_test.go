package booking_summary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	bookingSummary "github.com/m04kA/SMC-CapsterBooking/internal/usecase/booking_summary"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *bookingSummary.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context) (*bookingSummary.Response, error) {
	return f.resp, f.err
}

func TestHandler_Summary(t *testing.T) {
	uc := &fakeUseCase{resp: &bookingSummary.Response{
		Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Summary: domain.BookingSummary{
			CapsterActiveCount: 2,
			TotalBookingsToday: 3,
			Queues: []domain.CapsterQueue{
				{Capster: "Budi", Queue: []domain.QueueEntry{
					{Customer: "Andi", HourLabel: "10:00", Position: 1},
					{Customer: "Citra", HourLabel: "14:00", Position: 2},
				}},
				{Capster: "Unknown", Queue: []domain.QueueEntry{
					{Customer: "Dewi", HourLabel: "11:00", Position: 1},
				}},
			},
		},
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/booking-summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"capster_active": 2,
		"total_booking_today": 3,
		"list": [
			{"capster": "Budi", "booking": [
				{"customer": "Andi", "jam": "10:00", "antrian_ke": 1},
				{"customer": "Citra", "jam": "14:00", "antrian_ke": 2}
			]},
			{"capster": "Unknown", "booking": [
				{"customer": "Dewi", "jam": "11:00", "antrian_ke": 1}
			]}
		]
	}`, rec.Body.String())
}

func TestHandler_EmptyDay(t *testing.T) {
	uc := &fakeUseCase{resp: &bookingSummary.Response{Summary: domain.BookingSummary{CapsterActiveCount: 1}}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/booking-summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"capster_active":1,"total_booking_today":0,"list":[]}`, rec.Body.String())
}

func TestHandler_Internal(t *testing.T) {
	uc := &fakeUseCase{err: bookingSummary.ErrInternal}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/booking-summary", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
