package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dhanriti/tankflow/internal/config"
	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/service/flowservice"
)

func NewMock(t *testing.T) (*Service, *MockCanvasRepo, *MockFunnelRepo, *MockFlowRepo, *MockFlowExecutor) {
	ctrl := gomock.NewController(t)
	canvasRepo := NewMockCanvasRepo(ctrl)
	funnelRepo := NewMockFunnelRepo(ctrl)
	flowRepo := NewMockFlowRepo(ctrl)
	executor := NewMockFlowExecutor(ctrl)
	cfg := &config.Config{SweepInterval: time.Minute}
	service := New(cfg, canvasRepo, funnelRepo, flowRepo, executor)
	defer ctrl.Finish()
	return service, canvasRepo, funnelRepo, flowRepo, executor
}

func TestSweepFiresDueCanvasInflow(t *testing.T) {
	service, canvasRepo, funnelRepo, flowRepo, executor := NewMock(t)
	ctx := context.Background()

	// Last scheduled inflow was two days ago on a daily schedule.
	canvas := domain.Canvas{ID: 1, Name: "salary", InflowRate: "0 0 * * *", CreatedAt: time.Now().AddDate(0, -1, 0)}

	canvasRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Canvas{canvas}, nil)
	flowRepo.EXPECT().LastScheduledCanvasInflow(gomock.Any(), 1).
		Return(&domain.Flow{CreatedAt: time.Now().AddDate(0, 0, -2)}, nil)
	executor.EXPECT().TriggerCanvasInflow(gomock.Any(), gomock.Any(), flowservice.TriggerOptions{}).
		Return(&domain.Flow{Flowed: 100}, nil)
	funnelRepo.EXPECT().ListTimelyByCanvas(gomock.Any(), 1).Return(nil, nil)

	err := service.Sweep(ctx)
	assert.NoError(t, err)
}

func TestSweepSkipsNotDueCanvas(t *testing.T) {
	service, canvasRepo, funnelRepo, flowRepo, _ := NewMock(t)
	ctx := context.Background()

	// Fired moments ago; the next daily instant has not passed yet.
	canvas := domain.Canvas{ID: 1, InflowRate: "0 0 * * *", CreatedAt: time.Now().AddDate(0, -1, 0)}

	canvasRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Canvas{canvas}, nil)
	flowRepo.EXPECT().LastScheduledCanvasInflow(gomock.Any(), 1).
		Return(&domain.Flow{CreatedAt: time.Now().Add(-time.Minute)}, nil)
	funnelRepo.EXPECT().ListTimelyByCanvas(gomock.Any(), 1).Return(nil, nil)

	err := service.Sweep(ctx)
	assert.NoError(t, err)
}

func TestSweepNeverFiredAnchorsOnCreation(t *testing.T) {
	service, canvasRepo, funnelRepo, flowRepo, executor := NewMock(t)
	ctx := context.Background()

	canvas := domain.Canvas{ID: 1, InflowRate: "0 0 * * *", CreatedAt: time.Now().AddDate(0, 0, -3)}

	canvasRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Canvas{canvas}, nil)
	flowRepo.EXPECT().LastScheduledCanvasInflow(gomock.Any(), 1).Return(nil, nil)
	executor.EXPECT().TriggerCanvasInflow(gomock.Any(), gomock.Any(), flowservice.TriggerOptions{}).
		Return(&domain.Flow{}, nil)
	funnelRepo.EXPECT().ListTimelyByCanvas(gomock.Any(), 1).Return(nil, nil)

	err := service.Sweep(ctx)
	assert.NoError(t, err)
}

func TestSweepFiresDueTimelyFunnel(t *testing.T) {
	service, canvasRepo, funnelRepo, flowRepo, executor := NewMock(t)
	ctx := context.Background()

	canvas := domain.Canvas{ID: 1, InflowRate: "0 0 * * *", CreatedAt: time.Now().AddDate(0, -1, 0)}
	funnel := domain.Funnel{
		ID:           7,
		CanvasID:     1,
		Name:         "weekly move",
		FlowRate:     "0 0 * * *",
		FlowRateType: domain.Timely,
		CreatedAt:    time.Now().AddDate(0, -1, 0),
	}

	canvasRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Canvas{canvas}, nil)
	flowRepo.EXPECT().LastScheduledCanvasInflow(gomock.Any(), 1).
		Return(&domain.Flow{CreatedAt: time.Now().Add(-time.Minute)}, nil)
	funnelRepo.EXPECT().ListTimelyByCanvas(gomock.Any(), 1).Return([]domain.Funnel{funnel}, nil)
	flowRepo.EXPECT().LastScheduledForFunnel(gomock.Any(), 7).
		Return(&domain.Flow{CreatedAt: time.Now().AddDate(0, 0, -2)}, nil)
	executor.EXPECT().TriggerFunnel(gomock.Any(), gomock.Any(),
		flowservice.TriggerOptions{TimelyTrigger: true, BypassLastFlow: true}).
		Return(&domain.Flow{Flowed: 20}, nil)

	err := service.Sweep(ctx)
	assert.NoError(t, err)
}

func TestSweepContinuesPastFunnelFailure(t *testing.T) {
	service, canvasRepo, funnelRepo, flowRepo, executor := NewMock(t)
	ctx := context.Background()

	canvas := domain.Canvas{ID: 1, InflowRate: "0 0 * * *", CreatedAt: time.Now().AddDate(0, -1, 0)}
	first := domain.Funnel{ID: 7, CanvasID: 1, FlowRate: "0 0 * * *", FlowRateType: domain.Timely, CreatedAt: time.Now().AddDate(0, -1, 0)}
	second := domain.Funnel{ID: 8, CanvasID: 1, FlowRate: "0 0 * * *", FlowRateType: domain.Timely, CreatedAt: time.Now().AddDate(0, -1, 0)}

	canvasRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.Canvas{canvas}, nil)
	flowRepo.EXPECT().LastScheduledCanvasInflow(gomock.Any(), 1).
		Return(&domain.Flow{CreatedAt: time.Now().Add(-time.Minute)}, nil)
	funnelRepo.EXPECT().ListTimelyByCanvas(gomock.Any(), 1).Return([]domain.Funnel{first, second}, nil)
	flowRepo.EXPECT().LastScheduledForFunnel(gomock.Any(), 7).Return(nil, nil)
	flowRepo.EXPECT().LastScheduledForFunnel(gomock.Any(), 8).Return(nil, nil)
	executor.EXPECT().TriggerFunnel(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	executor.EXPECT().TriggerFunnel(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Flow{}, nil)

	err := service.Sweep(ctx)
	assert.NoError(t, err)
}
