package funnel

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
	funnelservice "github.com/dhanriti/tankflow/internal/service/funnelservice"
	"github.com/dhanriti/tankflow/pkg/auth"
)

func NewMock(t *testing.T) (*FunnelHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withCanvasParam(req *http.Request, canvasID uuid.UUID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("canvasID", canvasID.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateFunnelHandler(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()
	outTankID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "canvas sourced percentage funnel",
			body: `{"name":"Savings cut","flow_rate_type":2,"flow":20,"flow_type":2,"out_tank_id":"` + outTankID.String() + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, canvasID, gomock.Any()).
					DoAndReturn(func(ctx context.Context, userID int, canvasExternalID uuid.UUID, in funnelservice.Input) (*domain.Funnel, error) {
						assert.Nil(t, in.InTankExternalID)
						assert.Equal(t, outTankID, in.OutTankExternalID)
						assert.Equal(t, domain.Percentage, in.FlowType)
						return &domain.Funnel{
							ExternalID:        uuid.New(),
							Name:              in.Name,
							FlowRateType:      in.FlowRateType,
							Flow:              in.Flow,
							FlowType:          in.FlowType,
							OutTankExternalID: outTankID,
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed out_tank_id",
			body:         `{"name":"Broken","flow_rate_type":2,"flow":20,"flow_type":2,"out_tank_id":"not-a-uuid"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "cycle rejected",
			body: `{"name":"Loop back","flow_rate_type":2,"flow":10,"flow_type":1,"out_tank_id":"` + outTankID.String() + `"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, canvasID, gomock.Any()).
					Return(nil, funnelservice.ErrFunnelCycle)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authed(httptest.NewRequest("POST", "/api/canvases/"+canvasID.String()+"/funnels", bytes.NewReader([]byte(tt.body))), 1)
			req = withCanvasParam(req, canvasID)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.FunnelResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Savings cut", resp.Name)
				assert.Equal(t, outTankID.String(), resp.OutTankID)
			}
		})
	}
}

func TestDeleteFunnelHandlerNotFound(t *testing.T) {
	handler, service := NewMock(t)
	canvasID := uuid.New()
	funnelID := uuid.New()

	service.EXPECT().
		Delete(gomock.Any(), 1, canvasID, funnelID).
		Return(funnelservice.ErrFunnelNotFound)

	req := authed(httptest.NewRequest("DELETE", "/api/canvases/"+canvasID.String()+"/funnels/"+funnelID.String(), nil), 1)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("canvasID", canvasID.String())
	rctx.URLParams.Add("funnelID", funnelID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
