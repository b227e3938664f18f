package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-CapsterBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	now := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	return &createBooking.Response{
		ID:          7,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CapsterID:   req.CapsterID,
		Date:        req.Date,
		Hour:        req.Hour,
		ServiceID:   req.ServiceID,
		PaymentID:   req.PaymentID,
		Status:      "Menunggu",
		HaircutType: req.HaircutType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

const validBody = `{"name":"Andi","email":"andi@mail.com","phone":"0812","capster_id":1,"date":"2025-03-10","hour":10,"service_id":2,"payment_id":3,"haircut_type":"Fade"}`

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, 10, uc.got.Hour)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "Menunggu", resp.Status)
}

func TestHandler_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "bad date", body: `{"name":"Andi","date":"10-03-2025"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{createBooking.ErrDuplicateBooking, http.StatusConflict},
		{createBooking.ErrCapsterNotFound, http.StatusNotFound},
		{createBooking.ErrServiceNotFound, http.StatusNotFound},
		{createBooking.ErrPaymentMethodNotFound, http.StatusNotFound},
		{createBooking.ErrOutsideSchedule, http.StatusBadRequest},
		{createBooking.ErrInvalidDate, http.StatusBadRequest},
		{createBooking.ErrTooLateToBook, http.StatusBadRequest},
		{createBooking.ErrInvalidInput, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: details", tt.err)}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "details")
		})
	}
}
