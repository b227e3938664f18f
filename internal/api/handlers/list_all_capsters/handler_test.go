package list_all_capsters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/capsters/models"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) ListAll(context.Context) (*models.CapsterListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.CapsterListResponse{Capsters: []models.CapsterResponse{{ID: 1}, {ID: 2}}}, nil
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/capsters", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pagination")

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: capsters.ErrInternal}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/capsters", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
