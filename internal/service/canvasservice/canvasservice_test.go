package canvasservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dhanriti/tankflow/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCanvasRepo, *MockFunnelRepo) {
	ctrl := gomock.NewController(t)
	canvasRepo := NewMockCanvasRepo(ctrl)
	funnelRepo := NewMockFunnelRepo(ctrl)
	service := New(canvasRepo, funnelRepo)
	defer ctrl.Finish()
	return service, canvasRepo, funnelRepo
}

func TestCreateCanvas(t *testing.T) {
	service, canvasRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		inflow      float64
		inflowRate  string
		prepareMock func()
		expectedErr error
	}{
		{
			name:       "valid",
			inflow:     50000,
			inflowRate: "0 0 1 * *",
			prepareMock: func() {
				canvasRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error) {
						return canvas, nil
					},
				)
			},
		},
		{
			name:        "negative inflow",
			inflow:      -5,
			inflowRate:  "0 0 1 * *",
			prepareMock: func() {},
			expectedErr: ErrNegativeInflow,
		},
		{
			name:        "bad schedule",
			inflow:      100,
			inflowRate:  "every other tuesday",
			prepareMock: func() {},
			expectedErr: ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			canvas, err := service.Create(ctx, 42, "salary", "", tt.inflow, tt.inflowRate)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, canvas)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 42, canvas.UserID)
			assert.Equal(t, tt.inflow, canvas.Inflow)
			assert.NotEqual(t, uuid.Nil, canvas.ExternalID)
		})
	}
}

func TestGetCanvasWithFunnels(t *testing.T) {
	service, canvasRepo, funnelRepo := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1, Name: "salary"}, nil)
	funnelRepo.EXPECT().ListCanvasSourced(ctx, 1).Return([]domain.Funnel{{ID: 2, Name: "savings"}}, nil)

	canvas, funnels, err := service.Get(ctx, 42, canvasID)
	assert.NoError(t, err)
	assert.Equal(t, "salary", canvas.Name)
	assert.Len(t, funnels, 1)
}

func TestListCanvasesNestsFunnels(t *testing.T) {
	service, canvasRepo, funnelRepo := NewMock(t)
	ctx := context.Background()

	canvasRepo.EXPECT().ListByUser(ctx, 42).Return([]domain.Canvas{
		{ID: 1, Name: "salary"},
		{ID: 2, Name: "side project"},
	}, nil)
	funnelRepo.EXPECT().ListCanvasSourced(ctx, 1).Return([]domain.Funnel{{ID: 3, Name: "savings"}}, nil)
	funnelRepo.EXPECT().ListCanvasSourced(ctx, 2).Return(nil, nil)

	summaries, err := service.List(ctx, 42)
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "salary", summaries[0].Canvas.Name)
	assert.Len(t, summaries[0].Funnels, 1)
	assert.Empty(t, summaries[1].Funnels)
}

func TestGetCanvasNotOwned(t *testing.T) {
	service, canvasRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(nil, nil)

	canvas, funnels, err := service.Get(ctx, 42, canvasID)
	assert.ErrorIs(t, err, ErrCanvasNotFound)
	assert.Nil(t, canvas)
	assert.Nil(t, funnels)
}

func TestUpdateCanvas(t *testing.T) {
	service, canvasRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1, Name: "old"}, nil)
	canvasRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error) {
			return canvas, nil
		},
	)

	canvas, err := service.Update(ctx, 42, canvasID, "new", "desc", 200, "0 9 * * *")
	assert.NoError(t, err)
	assert.Equal(t, "new", canvas.Name)
	assert.Equal(t, 200.0, canvas.Inflow)
}

func TestDeleteCanvas(t *testing.T) {
	service, canvasRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	canvasRepo.EXPECT().SoftDelete(ctx, 1).Return(nil)

	err := service.Delete(ctx, 42, canvasID)
	assert.NoError(t, err)
}
