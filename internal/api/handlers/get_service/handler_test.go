package get_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) GetService(_ context.Context, id int64) (*models.ServiceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: id, Name: "Haircut"}, nil
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/services/{serviceId}", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(NewHandler(&fakeService{}, logger.NewNop()), "/api/v1/services/1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&fakeService{}, logger.NewNop()), "/api/v1/services/x").Code)
	assert.Equal(t, http.StatusNotFound, serve(NewHandler(&fakeService{err: catalog.ErrServiceNotFound}, logger.NewNop()), "/api/v1/services/1").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(NewHandler(&fakeService{err: catalog.ErrInternal}, logger.NewNop()), "/api/v1/services/1").Code)
}
