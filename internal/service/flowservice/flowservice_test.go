package flowservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockCanvasRepo, *MockTankRepo, *MockFunnelRepo, *MockFlowRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	canvasRepo := NewMockCanvasRepo(ctrl)
	tankRepo := NewMockTankRepo(ctrl)
	funnelRepo := NewMockFunnelRepo(ctrl)
	flowRepo := NewMockFlowRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(canvasRepo, tankRepo, funnelRepo, flowRepo, txManager)
	defer ctrl.Finish()
	return service, canvasRepo, tankRepo, funnelRepo, flowRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func echoCreate(flowRepo *MockFlowRepo) {
	flowRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, flow *domain.Flow) (*domain.Flow, error) {
			return flow, nil
		},
	)
}

func ptrInt(v int) *int { return &v }

func ptrFloat(v float64) *float64 { return &v }

func TestTriggerCanvasInflow(t *testing.T) {
	service, canvasRepo, _, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	canvas := &domain.Canvas{ID: 1, Name: "salary", Filled: 30, Inflow: 100}

	passthroughTx(txManager)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(canvas, nil)
	canvasRepo.EXPECT().UpdateFilled(gomock.Any(), 1, 130.0).Return(nil)
	echoCreate(flowRepo)
	funnelRepo.EXPECT().ListCanvasSourced(gomock.Any(), 1).Return(nil, nil)

	flow, err := service.TriggerCanvasInflow(ctx, canvas, TriggerOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, flow.Flowed)
	assert.False(t, flow.Manual)
	assert.Nil(t, flow.FunnelID)
	assert.Equal(t, 100.0, flow.Meta.Requested)
	assert.False(t, flow.Meta.Reduced)
}

func TestTriggerNotOwner(t *testing.T) {
	service, canvasRepo, _, _, _, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	// The user-scoped lookup misses; nothing else may run.
	canvasRepo.EXPECT().GetByExternalID(gomock.Any(), canvasID, 42).Return(nil, nil)

	flow, err := service.Trigger(ctx, 42, canvasID, nil)
	assert.ErrorIs(t, err, ErrCanvasNotFound)
	assert.Nil(t, flow)
}

func TestTriggerUnknownFunnel(t *testing.T) {
	service, canvasRepo, _, funnelRepo, _, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()
	funnelID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(gomock.Any(), canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	funnelRepo.EXPECT().GetByExternalID(gomock.Any(), funnelID, 1).Return(nil, nil)

	flow, err := service.Trigger(ctx, 42, canvasID, &funnelID)
	assert.ErrorIs(t, err, ErrFunnelNotFound)
	assert.Nil(t, flow)
}

func TestTriggerFunnelClampedByDestination(t *testing.T) {
	service, _, tankRepo, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	funnel := &domain.Funnel{
		ID:           7,
		CanvasID:     1,
		Name:         "overflow",
		FlowRateType: domain.Consequent,
		Flow:         50,
		FlowType:     domain.Absolute,
		InTankID:     ptrInt(3),
		OutTankID:    5,
	}

	passthroughTx(txManager)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 3).Return(&domain.Tank{ID: 3, Filled: 30}, nil)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Tank{ID: 5, Capacity: ptrFloat(100), Filled: 80}, nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 3, 10.0).Return(nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 5, 100.0).Return(nil)
	echoCreate(flowRepo)
	funnelRepo.EXPECT().ListByInTank(gomock.Any(), 5).Return(nil, nil)

	flow, err := service.TriggerFunnel(ctx, funnel, TriggerOptions{TimelyTrigger: true, BypassLastFlow: true, Manual: true})
	assert.NoError(t, err)
	assert.Equal(t, 20.0, flow.Flowed)
	assert.True(t, flow.Manual)
	assert.True(t, flow.Meta.Reduced)
	assert.Equal(t, domain.ReducedOutTankSpace, flow.Meta.ReducedReason)
	assert.Equal(t, 30.0, flow.Meta.Requested)
}

func TestTriggerFunnelConsequentUsesLastInbound(t *testing.T) {
	service, _, tankRepo, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	funnel := &domain.Funnel{
		ID:           7,
		CanvasID:     1,
		Name:         "tithe",
		FlowRateType: domain.Consequent,
		Flow:         10,
		FlowType:     domain.Percentage,
		InTankID:     ptrInt(3),
		OutTankID:    5,
	}

	passthroughTx(txManager)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 3).Return(&domain.Tank{ID: 3, Filled: 500}, nil)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Tank{ID: 5, Filled: 0}, nil)
	// The share is computed from what last arrived, not from the balance.
	flowRepo.EXPECT().LastIntoTank(gomock.Any(), 3).Return(&domain.Flow{Flowed: 200}, nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 3, 480.0).Return(nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 5, 20.0).Return(nil)
	echoCreate(flowRepo)
	funnelRepo.EXPECT().ListByInTank(gomock.Any(), 5).Return(nil, nil)

	flow, err := service.TriggerFunnel(ctx, funnel, TriggerOptions{TimelyTrigger: true})
	assert.NoError(t, err)
	assert.Equal(t, 20.0, flow.Flowed)
	assert.False(t, flow.Meta.Reduced)
}

func TestTriggerFunnelTimelyReactiveNoop(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	funnel := &domain.Funnel{
		ID:           7,
		FlowRateType: domain.Timely,
		Flow:         50,
		FlowType:     domain.Absolute,
		OutTankID:    5,
	}

	// A reactive trigger on a timely funnel moves nothing and leaves no row.
	flow, err := service.TriggerFunnel(ctx, funnel, TriggerOptions{})
	assert.NoError(t, err)
	assert.Nil(t, flow)
}

func TestTriggerFunnelZeroClampStillRecords(t *testing.T) {
	service, _, tankRepo, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	funnel := &domain.Funnel{
		ID:           7,
		CanvasID:     1,
		Name:         "into-full-tank",
		FlowRateType: domain.Consequent,
		Flow:         50,
		FlowType:     domain.Absolute,
		InTankID:     ptrInt(3),
		OutTankID:    5,
	}

	passthroughTx(txManager)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 3).Return(&domain.Tank{ID: 3, Filled: 30}, nil)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Tank{ID: 5, Capacity: ptrFloat(100), Filled: 100}, nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 3, 30.0).Return(nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 5, 100.0).Return(nil)
	echoCreate(flowRepo)
	funnelRepo.EXPECT().ListByInTank(gomock.Any(), 5).Return(nil, nil)

	flow, err := service.TriggerFunnel(ctx, funnel, TriggerOptions{TimelyTrigger: true, BypassLastFlow: true})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, flow.Flowed)
	assert.True(t, flow.Meta.Reduced)
	assert.Equal(t, domain.ReducedOutTankSpace, flow.Meta.ReducedReason)
}

func TestCanvasInflowCascades(t *testing.T) {
	service, canvasRepo, tankRepo, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	canvas := &domain.Canvas{ID: 1, Name: "salary", Filled: 30, Inflow: 100}
	downstream := domain.Funnel{
		ID:           2,
		CanvasID:     1,
		Name:         "savings",
		FlowRateType: domain.Consequent,
		Flow:         50,
		FlowType:     domain.Percentage,
		OutTankID:    9,
	}

	passthroughTx(txManager)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(canvas, nil)
	canvasRepo.EXPECT().UpdateFilled(gomock.Any(), 1, 130.0).Return(nil)
	echoCreate(flowRepo)

	// The committed inflow wakes the canvas-sourced funnel.
	funnelRepo.EXPECT().ListCanvasSourced(gomock.Any(), 1).Return([]domain.Funnel{downstream}, nil)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Canvas{ID: 1, Filled: 130, Inflow: 100}, nil)
	tankRepo.EXPECT().GetForUpdate(gomock.Any(), 9).Return(&domain.Tank{ID: 9, Filled: 0}, nil)
	flowRepo.EXPECT().LastCanvasInflow(gomock.Any(), 1).Return(&domain.Flow{Flowed: 100}, nil)
	canvasRepo.EXPECT().UpdateFilled(gomock.Any(), 1, 80.0).Return(nil)
	tankRepo.EXPECT().UpdateFilled(gomock.Any(), 9, 50.0).Return(nil)
	echoCreate(flowRepo)
	funnelRepo.EXPECT().ListByInTank(gomock.Any(), 9).Return(nil, nil)

	flow, err := service.TriggerCanvasInflow(ctx, canvas, TriggerOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, flow.Flowed)
}

func TestCascadeStepFailureDoesNotUnwind(t *testing.T) {
	service, canvasRepo, _, funnelRepo, flowRepo, txManager := NewMock(t)
	ctx := context.Background()

	canvas := &domain.Canvas{ID: 1, Filled: 0, Inflow: 100}
	broken := domain.Funnel{
		ID:           2,
		CanvasID:     1,
		Name:         "broken",
		FlowRateType: domain.Consequent,
		Flow:         10,
		FlowType:     domain.Absolute,
		OutTankID:    9,
	}

	passthroughTx(txManager)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(canvas, nil)
	canvasRepo.EXPECT().UpdateFilled(gomock.Any(), 1, 100.0).Return(nil)
	echoCreate(flowRepo)

	funnelRepo.EXPECT().ListCanvasSourced(gomock.Any(), 1).Return([]domain.Funnel{broken}, nil)
	canvasRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, errors.New("lock timeout"))

	// The inflow itself already committed and is returned despite the
	// downstream failure.
	flow, err := service.TriggerCanvasInflow(ctx, canvas, TriggerOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, flow.Flowed)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		source         domain.FlowSource
		outTank        *domain.Tank
		expectedFinal  float64
		expectedReason string
	}{
		{
			name:          "no clamping",
			amount:        20,
			source:        domain.TankSource{Tank: &domain.Tank{Filled: 100}},
			outTank:       &domain.Tank{Filled: 0},
			expectedFinal: 20,
		},
		{
			name:           "source short",
			amount:         50,
			source:         domain.TankSource{Tank: &domain.Tank{Filled: 30}},
			outTank:        &domain.Tank{Filled: 0},
			expectedFinal:  30,
			expectedReason: domain.ReducedInTankSpace,
		},
		{
			name:           "destination headroom binds after source",
			amount:         50,
			source:         domain.TankSource{Tank: &domain.Tank{Filled: 30}},
			outTank:        &domain.Tank{Capacity: ptrFloat(100), Filled: 90},
			expectedFinal:  10,
			expectedReason: domain.ReducedOutTankSpace,
		},
		{
			name:           "destination already full",
			amount:         50,
			source:         domain.TankSource{Tank: &domain.Tank{Filled: 200}},
			outTank:        &domain.Tank{Capacity: ptrFloat(100), Filled: 100},
			expectedFinal:  0,
			expectedReason: domain.ReducedOutTankSpace,
		},
		{
			name:          "unbounded destination",
			amount:        5000,
			source:        domain.CanvasSource{Canvas: &domain.Canvas{Filled: 5000}},
			outTank:       &domain.Tank{Filled: 123},
			expectedFinal: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, meta := clamp(tt.amount, tt.source, tt.outTank)
			assert.Equal(t, tt.expectedFinal, final)
			assert.Equal(t, tt.amount, meta.Requested)
			assert.Equal(t, tt.expectedReason, meta.ReducedReason)
			assert.Equal(t, final != tt.amount, meta.Reduced)
		})
	}
}

func TestListFlows(t *testing.T) {
	service, canvasRepo, _, _, flowRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(gomock.Any(), canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	flowRepo.EXPECT().ListByCanvas(gomock.Any(), 1).Return([]domain.Flow{{Flowed: 10}, {Flowed: 20}}, nil)

	flows, err := service.ListFlows(ctx, 42, canvasID)
	assert.NoError(t, err)
	assert.Len(t, flows, 2)
}

func TestGetFlowNotFound(t *testing.T) {
	service, canvasRepo, _, _, flowRepo, _ := NewMock(t)
	ctx := context.Background()
	canvasID := uuid.New()
	flowID := uuid.New()

	canvasRepo.EXPECT().GetByExternalID(gomock.Any(), canvasID, 42).Return(&domain.Canvas{ID: 1}, nil)
	flowRepo.EXPECT().GetByExternalID(gomock.Any(), flowID, 1).Return(nil, nil)

	flow, err := service.GetFlow(ctx, 42, canvasID, flowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
	assert.Nil(t, flow)
}
