package tankservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockTankRepo, *MockCanvasRepo, *MockFunnelRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	tankRepo := NewMockTankRepo(ctrl)
	canvasRepo := NewMockCanvasRepo(ctrl)
	funnelRepo := NewMockFunnelRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(tankRepo, canvasRepo, funnelRepo, txManager)
	defer ctrl.Finish()
	return service, tankRepo, canvasRepo, funnelRepo, txManager
}

func ptrFloat(v float64) *float64 { return &v }

func TestCreateTank(t *testing.T) {
	service, tankRepo, canvasRepo, _, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	tests := []struct {
		name        string
		capacity    *float64
		prepareMock func()
		expectedErr error
	}{
		{
			name:     "bounded tank",
			capacity: ptrFloat(1000),
			prepareMock: func() {
				canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
				tankRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(ctx context.Context, tank *domain.Tank) (*domain.Tank, error) {
						return tank, nil
					},
				)
			},
		},
		{
			name:     "unbounded tank",
			capacity: nil,
			prepareMock: func() {
				canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
				tankRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(ctx context.Context, tank *domain.Tank) (*domain.Tank, error) {
						return tank, nil
					},
				)
			},
		},
		{
			name:        "zero capacity rejected",
			capacity:    ptrFloat(0),
			prepareMock: func() {},
			expectedErr: ErrInvalidCapacity,
		},
		{
			name:     "unknown canvas",
			capacity: nil,
			prepareMock: func() {
				canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(nil, nil)
			},
			expectedErr: ErrCanvasNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tank, err := service.Create(ctx, 42, canvasID, "rent", "", tt.capacity, "#2a9d8f")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, tank)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, tank.CanvasID)
			assert.Equal(t, tt.capacity, tank.Capacity)
			assert.NotEqual(t, uuid.Nil, tank.ExternalID)
		})
	}
}

func TestListTanksNestsFunnels(t *testing.T) {
	service, tankRepo, canvasRepo, funnelRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	tankRepo.EXPECT().ListByCanvas(ctx, 1).Return([]domain.Tank{
		{ID: 3, Name: "rent"},
		{ID: 4, Name: "savings"},
	}, nil)
	funnelRepo.EXPECT().ListByInTank(ctx, 3).Return([]domain.Funnel{{ID: 5, Name: "overflow"}}, nil)
	funnelRepo.EXPECT().ListByInTank(ctx, 4).Return(nil, nil)

	summaries, err := service.List(ctx, 42, canvasID)
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "rent", summaries[0].Tank.Name)
	assert.Len(t, summaries[0].Funnels, 1)
	assert.Empty(t, summaries[1].Funnels)
}

func TestUpdateTankCapacityBelowLevel(t *testing.T) {
	service, tankRepo, canvasRepo, _, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()
	tankID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	tankRepo.EXPECT().GetByExternalID(ctx, tankID, 1).Return(&domain.Tank{ID: 3, Filled: 700}, nil)

	tank, err := service.Update(ctx, 42, canvasID, tankID, "rent", "", ptrFloat(500), "")
	assert.ErrorIs(t, err, ErrCapacityBelowLevel)
	assert.Nil(t, tank)
}

func TestDeleteTankTransfer(t *testing.T) {
	service, tankRepo, canvasRepo, funnelRepo, txManager := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()
	tankID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	tankRepo.EXPECT().GetByExternalID(ctx, tankID, 1).Return(&domain.Tank{ID: 3, CanvasID: 1, Filled: 250}, nil)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 3).Return(&domain.Tank{ID: 3, CanvasID: 1, Filled: 250}, nil)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Canvas{ID: 1, Filled: 100}, nil)
	canvasRepo.EXPECT().UpdateFilled(gomock.Any(), 1, 350.0).Return(nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 3, 0.0).Return(nil)
	funnelRepo.EXPECT().SoftDeleteByTank(gomock.Any(), 3).Return(nil)
	tankRepo.EXPECT().SoftDelete(gomock.Any(), 3).Return(nil)

	err := service.Delete(ctx, 42, canvasID, tankID, StrategyTransfer)
	assert.NoError(t, err)
}

func TestDeleteTankDiscard(t *testing.T) {
	service, tankRepo, canvasRepo, funnelRepo, txManager := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()
	tankID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(ctx, canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	tankRepo.EXPECT().GetByExternalID(ctx, tankID, 1).Return(&domain.Tank{ID: 3, CanvasID: 1, Filled: 250}, nil)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
	// No balance movement: the funds are dropped with the tank.
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 3).Return(&domain.Tank{ID: 3, CanvasID: 1, Filled: 250}, nil)
	funnelRepo.EXPECT().SoftDeleteByTank(gomock.Any(), 3).Return(nil)
	tankRepo.EXPECT().SoftDelete(gomock.Any(), 3).Return(nil)

	err := service.Delete(ctx, 42, canvasID, tankID, StrategyDiscard)
	assert.NoError(t, err)
}

func TestDeleteTankUnknownStrategy(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	err := service.Delete(context.Background(), 42, uuid.New(), uuid.New(), DeleteStrategy("evaporate"))
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}
