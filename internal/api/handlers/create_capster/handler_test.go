package create_capster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeService struct {
	got *models.CreateCapsterRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateCapsterRequest) (*models.CapsterResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.CapsterResponse{ID: 1, Username: req.Username}, nil
}

const body = `{
	"username": "budi",
	"spesialis": "Fade",
	"phone": "0812",
	"description": "Senior",
	"email": "budi@mail.com",
	"schedule": {"minggu": {"is_active": false}, "senin": {"jam_kerja": "09:00 - 18:00"}}
}`

func TestHandler_Created(t *testing.T) {
	svc := &fakeService{}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/capsters", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "Fade", svc.got.Specialty)
	require.Contains(t, svc.got.Schedule, "minggu")
	require.NotNil(t, svc.got.Schedule["minggu"].IsActive)
	assert.False(t, *svc.got.Schedule["minggu"].IsActive)
	require.NotNil(t, svc.got.Schedule["senin"].JamKerja)
	assert.Equal(t, "09:00 - 18:00", *svc.got.Schedule["senin"].JamKerja)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "malformed", body: `{`, status: http.StatusBadRequest},
		{name: "exists", body: body, err: capsters.ErrCapsterAlreadyExists, status: http.StatusConflict},
		{name: "schedule", body: body, err: capsters.ErrInvalidSchedule, status: http.StatusBadRequest},
		{name: "input", body: body, err: capsters.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", body: body, err: capsters.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/capsters", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
