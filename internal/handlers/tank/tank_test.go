package tank

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/dto"
	tankservice "github.com/dhanriti/tankflow/internal/service/tankservice"
	"github.com/dhanriti/tankflow/pkg/auth"
)

func NewMock(t *testing.T) (*TankHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withTankParams(req *http.Request, canvasID, tankID uuid.UUID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("canvasID", canvasID.String())
	rctx.URLParams.Add("tankID", tankID.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateTankHandler(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()

	service.EXPECT().
		Create(gomock.Any(), 1, canvasID, "Rent", "", gomock.Any(), "#2a9d8f").
		DoAndReturn(func(ctx context.Context, userID int, canvasExternalID uuid.UUID, name, description string, capacity *float64, color string) (*domain.Tank, error) {
			assert.Equal(t, 15000.0, *capacity)
			return &domain.Tank{ExternalID: uuid.New(), Name: name, Capacity: capacity, Color: color}, nil
		})

	body := `{"name":"Rent","capacity":15000,"color":"#2a9d8f"}`
	req := authed(httptest.NewRequest("POST", "/api/canvases/"+canvasID.String()+"/tanks", bytes.NewReader([]byte(body))), 1)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("canvasID", canvasID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp dto.TankResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Rent", resp.Name)
	assert.Equal(t, 15000.0, *resp.Capacity)
}

func TestDeleteTankHandlerStrategies(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()
	tankID := uuid.New()

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "default is transfer",
			query: "",
			prepareMock: func() {
				service.EXPECT().
					Delete(gomock.Any(), 1, canvasID, tankID, tankservice.StrategyTransfer).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:  "discard",
			query: "?strategy=discard",
			prepareMock: func() {
				service.EXPECT().
					Delete(gomock.Any(), 1, canvasID, tankID, tankservice.StrategyDiscard).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:  "unknown strategy",
			query: "?strategy=evaporate",
			prepareMock: func() {
				service.EXPECT().
					Delete(gomock.Any(), 1, canvasID, tankID, tankservice.DeleteStrategy("evaporate")).
					Return(tankservice.ErrInvalidStrategy)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			url := "/api/canvases/" + canvasID.String() + "/tanks/" + tankID.String() + tt.query
			req := authed(httptest.NewRequest("DELETE", url, nil), 1)
			req = withTankParams(req, canvasID, tankID)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetTankHandlerNotFound(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()
	tankID := uuid.New()

	service.EXPECT().
		Get(gomock.Any(), 1, canvasID, tankID).
		Return(nil, nil, tankservice.ErrTankNotFound)

	req := authed(httptest.NewRequest("GET", "/api/canvases/"+canvasID.String()+"/tanks/"+tankID.String(), nil), 1)
	req = withTankParams(req, canvasID, tankID)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
