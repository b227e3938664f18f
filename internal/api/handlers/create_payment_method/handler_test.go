package create_payment_method

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CapsterBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) CreatePaymentMethod(_ context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethodResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PaymentMethodResponse{ID: 3, Name: req.Name}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "created", body: `{"name":"QRIS"}`, status: http.StatusCreated},
		{name: "malformed", body: `[`, status: http.StatusBadRequest},
		{name: "exists", body: `{"name":"QRIS"}`, err: catalog.ErrAlreadyExists, status: http.StatusConflict},
		{name: "invalid", body: `{"name":""}`, err: catalog.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", body: `{"name":"QRIS"}`, err: catalog.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payment-methods", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
