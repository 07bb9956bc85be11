package canvas

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
	canvasservice "github.com/dhanriti/tankflow/internal/service/canvasservice"
	"github.com/dhanriti/tankflow/pkg/auth"
	"github.com/dhanriti/tankflow/pkg/utils"
)

func NewMock(t *testing.T) (*CanvasHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateCanvasHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"name":"Salary","inflow":50000,"inflow_rate":"0 0 1 * *"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Salary", "", 50000.0, "0 0 1 * *").
					Return(&domain.Canvas{ID: 1, ExternalID: uuid.New(), Name: "Salary", Inflow: 50000, InflowRate: "0 0 1 * *"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Bad schedule",
			body: `{"name":"Salary","inflow":50000,"inflow_rate":"whenever"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Salary", "", 50000.0, "whenever").
					Return(nil, canvasservice.ErrInvalidSchedule)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: canvasservice.ErrInvalidSchedule.Error(),
		},
		{
			name:          "Invalid body",
			body:          `{broken`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authed(httptest.NewRequest("POST", "/api/canvases", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetCanvasHandler(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()

	service.EXPECT().
		Get(gomock.Any(), 1, canvasID).
		Return(&domain.Canvas{ID: 1, ExternalID: canvasID, Name: "Salary", Filled: 130},
			[]domain.Funnel{{ExternalID: uuid.New(), Name: "savings", OutTankExternalID: uuid.New()}}, nil)

	req := authed(httptest.NewRequest("GET", "/api/canvases/"+canvasID.String(), nil), 1)
	req = withURLParam(req, "canvasID", canvasID.String())
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CanvasResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, canvasID.String(), resp.ExternalID)
	assert.Len(t, resp.Funnels, 1)
}

func TestGetCanvasHandlerNotFound(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()

	service.EXPECT().Get(gomock.Any(), 1, canvasID).Return(nil, nil, canvasservice.ErrCanvasNotFound)

	req := authed(httptest.NewRequest("GET", "/api/canvases/"+canvasID.String(), nil), 1)
	req = withURLParam(req, "canvasID", canvasID.String())
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetCanvasHandlerBadID(t *testing.T) {
	handler, _ := NewMock(t)

	req := authed(httptest.NewRequest("GET", "/api/canvases/not-a-uuid", nil), 1)
	req = withURLParam(req, "canvasID", "not-a-uuid")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCanvasHandler(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()

	service.EXPECT().Delete(gomock.Any(), 1, canvasID).Return(nil)

	req := authed(httptest.NewRequest("DELETE", "/api/canvases/"+canvasID.String(), nil), 1)
	req = withURLParam(req, "canvasID", canvasID.String())
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
