package funnelservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/pkg/cronexpr"
)

var (
	ErrCanvasNotFound   = errors.New("canvas not found")
	ErrTankNotFound     = errors.New("tank not found")
	ErrFunnelNotFound   = errors.New("funnel not found")
	ErrSelfFunnel       = errors.New("funnel cannot flow into its own input tank")
	ErrNegativeFlow     = errors.New("flow must not be negative")
	ErrInvalidFlowType  = errors.New("unknown flow type")
	ErrInvalidRateType  = errors.New("unknown flow rate type")
	ErrInvalidSchedule  = errors.New("invalid schedule expression")
	ErrScheduleRequired = errors.New("timely funnels require a schedule")
	ErrFunnelCycle      = errors.New("funnel would close a cycle")
)

type FunnelRepo interface {
	Create(ctx context.Context, funnel *domain.Funnel) (*domain.Funnel, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Funnel, error)
	ListByCanvas(ctx context.Context, canvasID int) ([]domain.Funnel, error)
	SoftDelete(ctx context.Context, id int) error
}

type CanvasRepo interface {
	GetByExternalID(ctx context.Context, externalID uuid.UUID, userID int) (*domain.Canvas, error)
}

type TankRepo interface {
	GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Tank, error)
}

// Input is a funnel creation request. InTankExternalID nil means the funnel
// draws from the canvas main balance.
type Input struct {
	Name              string
	FlowRate          string
	FlowRateType      domain.FlowRateType
	Flow              float64
	FlowType          domain.FlowType
	InTankExternalID  *uuid.UUID
	OutTankExternalID uuid.UUID
}

type Service struct {
	funnelRepo FunnelRepo
	canvasRepo CanvasRepo
	tankRepo   TankRepo
}

func New(funnelRepo FunnelRepo, canvasRepo CanvasRepo, tankRepo TankRepo) *Service {
	return &Service{
		funnelRepo: funnelRepo,
		canvasRepo: canvasRepo,
		tankRepo:   tankRepo,
	}
}

// Create validates the funnel before persisting it: both tanks must belong to
// the canvas, the edge may not be a self-loop, a timely funnel needs a valid
// schedule, and the new edge may not close a cycle in the canvas's funnel
// graph.
func (s *Service) Create(ctx context.Context, userID int, canvasExternalID uuid.UUID, in Input) (*domain.Funnel, error) {
	if in.Flow < 0 {
		return nil, ErrNegativeFlow
	}
	if in.FlowType != domain.Absolute && in.FlowType != domain.Percentage {
		return nil, ErrInvalidFlowType
	}
	if in.FlowRateType != domain.Timely && in.FlowRateType != domain.Consequent {
		return nil, ErrInvalidRateType
	}
	if in.FlowRateType == domain.Timely {
		if in.FlowRate == "" {
			return nil, ErrScheduleRequired
		}
		if err := cronexpr.Validate(in.FlowRate); err != nil {
			zap.L().Info("rejected funnel schedule", zap.String("flow_rate", in.FlowRate), zap.Error(err))
			return nil, ErrInvalidSchedule
		}
	}

	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}

	outTank, err := s.tankRepo.GetByExternalID(ctx, in.OutTankExternalID, canvas.ID)
	if err != nil {
		return nil, err
	}
	if outTank == nil {
		return nil, ErrTankNotFound
	}

	var inTankID *int
	if in.InTankExternalID != nil {
		inTank, err := s.tankRepo.GetByExternalID(ctx, *in.InTankExternalID, canvas.ID)
		if err != nil {
			return nil, err
		}
		if inTank == nil {
			return nil, ErrTankNotFound
		}
		if inTank.ID == outTank.ID {
			return nil, ErrSelfFunnel
		}
		inTankID = &inTank.ID
	}

	if inTankID != nil {
		cyclic, err := s.wouldCycle(ctx, canvas.ID, *inTankID, outTank.ID)
		if err != nil {
			return nil, err
		}
		if cyclic {
			return nil, ErrFunnelCycle
		}
	}

	funnel := &domain.Funnel{
		ExternalID:   uuid.New(),
		CanvasID:     canvas.ID,
		Name:         in.Name,
		FlowRate:     in.FlowRate,
		FlowRateType: in.FlowRateType,
		Flow:         in.Flow,
		FlowType:     in.FlowType,
		InTankID:     inTankID,
		OutTankID:    outTank.ID,
	}
	created, err := s.funnelRepo.Create(ctx, funnel)
	if err != nil {
		zap.L().Error("failed to create funnel", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// wouldCycle reports whether adding the edge inTank -> outTank closes a loop:
// true iff outTank already reaches inTank through existing funnels. Canvas-
// sourced funnels can't participate in cycles since nothing flows back into
// the main balance.
func (s *Service) wouldCycle(ctx context.Context, canvasID, inTankID, outTankID int) (bool, error) {
	funnels, err := s.funnelRepo.ListByCanvas(ctx, canvasID)
	if err != nil {
		return false, err
	}

	edges := make(map[int][]int)
	for _, f := range funnels {
		if f.InTankID == nil {
			continue
		}
		edges[*f.InTankID] = append(edges[*f.InTankID], f.OutTankID)
	}

	visited := make(map[int]bool)
	stack := []int{outTankID}
	for len(stack) > 0 {
		tank := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tank == inTankID {
			return true, nil
		}
		if visited[tank] {
			continue
		}
		visited[tank] = true
		stack = append(stack, edges[tank]...)
	}
	return false, nil
}

func (s *Service) Get(ctx context.Context, userID int, canvasExternalID, funnelExternalID uuid.UUID) (*domain.Funnel, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	funnel, err := s.funnelRepo.GetByExternalID(ctx, funnelExternalID, canvas.ID)
	if err != nil {
		return nil, err
	}
	if funnel == nil {
		return nil, ErrFunnelNotFound
	}
	return funnel, nil
}

func (s *Service) List(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]domain.Funnel, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	return s.funnelRepo.ListByCanvas(ctx, canvas.ID)
}

func (s *Service) Delete(ctx context.Context, userID int, canvasExternalID, funnelExternalID uuid.UUID) error {
	funnel, err := s.Get(ctx, userID, canvasExternalID, funnelExternalID)
	if err != nil {
		return err
	}
	return s.funnelRepo.SoftDelete(ctx, funnel.ID)
}
