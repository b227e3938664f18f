package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
	"github.com/m04kA/SMC-CapsterBooking/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	resp.CapsterID = req.CapsterID
	resp.Date = req.Date
	return &resp, nil
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/capsters/{capsterId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_Slots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Working: types.MustParseTimeRange("10:00 - 20:00"),
		Break:   types.MustParseTimeRange("12:00 - 13:00"),
		Slots: []getAvailableSlots.Slot{
			{Hour: 10, StartTime: "10:00", EndTime: "11:00"},
			{Hour: 11, StartTime: "11:00", EndTime: "12:00"},
		},
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), "/api/v1/capsters/2/available-slots?date=2025-03-10")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.CapsterID)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.False(t, resp.DayOff)
	assert.Equal(t, "10:00 - 20:00", resp.JamKerja)
	assert.Equal(t, "12:00 - 13:00", resp.JamIstirahat)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, AvailableSlot{Hour: 11, StartTime: "11:00", EndTime: "12:00"}, resp.Slots[1])
}

func TestHandler_DayOffHasEmptySlots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{DayOff: true}}

	rec := serve(NewHandler(uc, logger.NewNop()), "/api/v1/capsters/2/available-slots?date=2025-03-16")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2025-03-16","capster_id":2,"day_off":true,"slots":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "invalid capster id", path: "/api/v1/capsters/x/available-slots?date=2025-03-10", status: http.StatusBadRequest},
		{name: "missing date", path: "/api/v1/capsters/2/available-slots", status: http.StatusBadRequest},
		{name: "bad date", path: "/api/v1/capsters/2/available-slots?date=2025/03/10", status: http.StatusBadRequest},
		{name: "capster not found", path: "/api/v1/capsters/2/available-slots?date=2025-03-10", err: getAvailableSlots.ErrCapsterNotFound, status: http.StatusNotFound},
		{name: "invalid input", path: "/api/v1/capsters/2/available-slots?date=2025-03-10", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", path: "/api/v1/capsters/2/available-slots?date=2025-03-10", err: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err, resp: &getAvailableSlots.Response{}}, logger.NewNop()), tt.path)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
