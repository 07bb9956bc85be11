package flowservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
)

// Funnel chains are acyclic by construction (funnelservice rejects cycles);
// the depth bound is a second line of defense against data predating that
// check.
const maxCascadeDepth = 32

var (
	ErrCanvasNotFound = errors.New("canvas not found")
	ErrFunnelNotFound = errors.New("funnel not found")
	ErrFlowNotFound   = errors.New("flow not found")
	ErrCascadeTooDeep = errors.New("funnel cascade exceeds depth bound")
)

type CanvasRepo interface {
	GetByExternalID(ctx context.Context, externalID uuid.UUID, userID int) (*domain.Canvas, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Canvas, error)
	UpdateFilled(ctx context.Context, id int, filled float64) error
}

type TankRepo interface {
	GetForUpdate(ctx context.Context, id int) (*domain.Tank, error)
	UpdateFilled(ctx context.Context, id int, filled float64) error
}

type FunnelRepo interface {
	GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Funnel, error)
	ListByInTank(ctx context.Context, tankID int) ([]domain.Funnel, error)
	ListCanvasSourced(ctx context.Context, canvasID int) ([]domain.Funnel, error)
}

type FlowRepo interface {
	Create(ctx context.Context, flow *domain.Flow) (*domain.Flow, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Flow, error)
	ListByCanvas(ctx context.Context, canvasID int) ([]domain.Flow, error)
	LastCanvasInflow(ctx context.Context, canvasID int) (*domain.Flow, error)
	LastIntoTank(ctx context.Context, tankID int) (*domain.Flow, error)
}

// TriggerOptions carries the trigger provenance through calculation and
// execution.
type TriggerOptions struct {
	// TimelyTrigger marks an invocation that stands in for the clock; timely
	// funnels fire only when it is set.
	TimelyTrigger bool
	// BypassLastFlow makes consequent funnels base their amount on the input
	// side's current balance instead of the last inbound flow.
	BypassLastFlow bool
	// Manual marks a user-forced flow; manual flows never advance the
	// schedule clock.
	Manual bool
}

type Service struct {
	canvasRepo CanvasRepo
	tankRepo   TankRepo
	funnelRepo FunnelRepo
	flowRepo   FlowRepo
	txManager  pg.TXManager
}

func New(canvasRepo CanvasRepo, tankRepo TankRepo, funnelRepo FunnelRepo, flowRepo FlowRepo, txManager pg.TXManager) *Service {
	return &Service{
		canvasRepo: canvasRepo,
		tankRepo:   tankRepo,
		funnelRepo: funnelRepo,
		flowRepo:   flowRepo,
		txManager:  txManager,
	}
}

// Trigger is the manual trigger entry point. The canvas lookup is scoped to
// the requesting user, so a non-owner gets not-found before any calculation
// runs. With funnelExternalID present a funnel flow is forced, otherwise a
// canvas inflow.
func (s *Service) Trigger(ctx context.Context, userID int, canvasExternalID uuid.UUID, funnelExternalID *uuid.UUID) (*domain.Flow, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}

	opts := TriggerOptions{Manual: true, BypassLastFlow: true, TimelyTrigger: true}

	if funnelExternalID == nil {
		return s.TriggerCanvasInflow(ctx, canvas, opts)
	}

	funnel, err := s.funnelRepo.GetByExternalID(ctx, *funnelExternalID, canvas.ID)
	if err != nil {
		return nil, err
	}
	if funnel == nil {
		return nil, ErrFunnelNotFound
	}
	return s.TriggerFunnel(ctx, funnel, opts)
}

// TriggerCanvasInflow injects canvas.Inflow into the canvas main balance,
// records the Flow, and cascades into the funnels drawing from the main
// balance.
func (s *Service) TriggerCanvasInflow(ctx context.Context, canvas *domain.Canvas, opts TriggerOptions) (*domain.Flow, error) {
	var created *domain.Flow

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.canvasRepo.GetForUpdate(ctx, canvas.ID)
		if err != nil {
			return err
		}

		amount := locked.Inflow
		if err := s.canvasRepo.UpdateFilled(ctx, locked.ID, locked.Filled+amount); err != nil {
			return err
		}

		created, err = s.flowRepo.Create(ctx, &domain.Flow{
			ExternalID: uuid.New(),
			CanvasID:   locked.ID,
			Flowed:     amount,
			Manual:     opts.Manual,
			Meta:       domain.FlowMeta{Requested: amount},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("canvas inflow failed: %w", err)
	}

	zap.L().Info("canvas inflow",
		zap.String("canvas", canvas.Name),
		zap.Float64("flowed", created.Flowed),
		zap.Bool("manual", created.Manual),
	)

	s.cascadeFromCanvas(ctx, canvas.ID, newCascadeState())

	return created, nil
}

// TriggerFunnel runs one flow step for the funnel and cascades into
// downstream funnels. The step itself is one transaction; every cascade step
// commits independently so a downstream failure never unwinds an upstream
// transfer.
func (s *Service) TriggerFunnel(ctx context.Context, funnel *domain.Funnel, opts TriggerOptions) (*domain.Flow, error) {
	created, err := s.executeFunnel(ctx, funnel, opts)
	if err != nil || created == nil {
		return nil, err
	}

	s.cascadeFromTank(ctx, funnel.OutTankID, newCascadeState())

	return created, nil
}

// executeFunnel is one calculate → clamp → mutate → record step inside a
// single transaction, without the downstream cascade.
func (s *Service) executeFunnel(ctx context.Context, funnel *domain.Funnel, opts TriggerOptions) (*domain.Flow, error) {
	if funnel.FlowRateType == domain.Timely && !opts.TimelyTrigger {
		// Timely funnels answer only to the clock; a reactive trigger is a
		// no-op and leaves no audit row.
		return nil, nil
	}

	var created *domain.Flow

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		source, outTank, err := s.lockEndpoints(ctx, funnel)
		if err != nil {
			return err
		}

		amount, err := s.calculate(ctx, funnel, source, opts)
		if err != nil {
			return err
		}

		final, meta := clamp(amount, source, outTank)

		if err := s.applySourceDebit(ctx, source, final); err != nil {
			return err
		}
		if err := s.tankRepo.UpdateFilled(ctx, outTank.ID, outTank.Filled+final); err != nil {
			return err
		}

		created, err = s.flowRepo.Create(ctx, &domain.Flow{
			ExternalID: uuid.New(),
			CanvasID:   funnel.CanvasID,
			FunnelID:   &funnel.ID,
			Flowed:     final,
			Manual:     opts.Manual,
			Meta:       meta,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("funnel flow failed: %w", err)
	}

	zap.L().Info("funnel flow",
		zap.String("funnel", funnel.Name),
		zap.Float64("flowed", created.Flowed),
		zap.Bool("reduced", created.Meta.Reduced),
		zap.Bool("manual", created.Manual),
	)
	return created, nil
}

// lockEndpoints locks the input side and the output tank for the duration of
// the transaction. Tank pairs are locked in ascending id order so two
// opposite transfers can't deadlock.
func (s *Service) lockEndpoints(ctx context.Context, funnel *domain.Funnel) (domain.FlowSource, *domain.Tank, error) {
	if funnel.InTankID == nil {
		canvas, err := s.canvasRepo.GetForUpdate(ctx, funnel.CanvasID)
		if err != nil {
			return nil, nil, err
		}
		outTank, err := s.tankRepo.GetForUpdate(ctx, funnel.OutTankID)
		if err != nil {
			return nil, nil, err
		}
		return domain.CanvasSource{Canvas: canvas}, outTank, nil
	}

	first, second := *funnel.InTankID, funnel.OutTankID
	if first > second {
		first, second = second, first
	}
	firstTank, err := s.tankRepo.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondTank, err := s.tankRepo.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	inTank, outTank := firstTank, secondTank
	if inTank.ID != *funnel.InTankID {
		inTank, outTank = secondTank, firstTank
	}
	return domain.TankSource{Tank: inTank}, outTank, nil
}

// calculate computes the amount a funnel proposes to move, before capacity
// clamping. A consequent funnel moves a share of what last arrived on its
// input side; a timely funnel moves a share of what the input side holds now.
func (s *Service) calculate(ctx context.Context, funnel *domain.Funnel, source domain.FlowSource, opts TriggerOptions) (float64, error) {
	basis := source.Filled()

	if funnel.FlowRateType == domain.Consequent && !opts.BypassLastFlow {
		lastIn, err := s.lastInbound(ctx, funnel)
		if err != nil {
			return 0, err
		}
		if lastIn != nil {
			basis = lastIn.Flowed
		}
	}

	var amount float64
	if funnel.FlowType == domain.Percentage {
		amount = basis * funnel.Flow / 100
	} else {
		amount = funnel.Flow
		if amount > basis {
			amount = basis
		}
	}
	if amount < 0 {
		amount = 0
	}
	return amount, nil
}

// lastInbound finds the flow that most recently fed the funnel's input side.
func (s *Service) lastInbound(ctx context.Context, funnel *domain.Funnel) (*domain.Flow, error) {
	if funnel.InTankID == nil {
		return s.flowRepo.LastCanvasInflow(ctx, funnel.CanvasID)
	}
	return s.flowRepo.LastIntoTank(ctx, *funnel.InTankID)
}

// clamp reduces the proposed amount first by what the source actually holds,
// then by the destination headroom, recording the binding constraint. A zero
// result still gets its audit row.
func clamp(amount float64, source domain.FlowSource, outTank *domain.Tank) (float64, domain.FlowMeta) {
	meta := domain.FlowMeta{Requested: amount}
	final := amount

	if available := source.Filled(); final > available {
		final = available
		meta.ReducedReason = domain.ReducedInTankSpace
	}
	if outTank.Capacity != nil {
		if headroom := *outTank.Capacity - outTank.Filled; final > headroom {
			final = headroom
			meta.ReducedReason = domain.ReducedOutTankSpace
		}
	}
	if final < 0 {
		final = 0
	}
	meta.Reduced = final != amount
	if !meta.Reduced {
		meta.ReducedReason = ""
	}
	return final, meta
}

type cascadeState struct {
	visited map[int]bool
	depth   int
}

func newCascadeState() *cascadeState {
	return &cascadeState{visited: make(map[int]bool)}
}

// cascadeFromTank re-evaluates every funnel drawing from the tank after money
// arrived in it. Each step commits on its own; failures are logged and do not
// unwind the transfer that fed the cascade.
func (s *Service) cascadeFromTank(ctx context.Context, tankID int, state *cascadeState) {
	funnels, err := s.funnelRepo.ListByInTank(ctx, tankID)
	if err != nil {
		zap.L().Error("cascade: can't list downstream funnels", zap.Int("tank_id", tankID), zap.Error(err))
		return
	}
	s.cascade(ctx, funnels, state)
}

// cascadeFromCanvas re-evaluates the funnels drawing from the canvas main
// balance after a canvas inflow.
func (s *Service) cascadeFromCanvas(ctx context.Context, canvasID int, state *cascadeState) {
	funnels, err := s.funnelRepo.ListCanvasSourced(ctx, canvasID)
	if err != nil {
		zap.L().Error("cascade: can't list canvas funnels", zap.Int("canvas_id", canvasID), zap.Error(err))
		return
	}
	s.cascade(ctx, funnels, state)
}

func (s *Service) cascade(ctx context.Context, funnels []domain.Funnel, state *cascadeState) {
	if state.depth >= maxCascadeDepth {
		zap.L().Error("cascade aborted", zap.Error(ErrCascadeTooDeep))
		return
	}
	state.depth++
	defer func() { state.depth-- }()

	for i := range funnels {
		funnel := funnels[i]
		if state.visited[funnel.ID] {
			continue
		}
		state.visited[funnel.ID] = true

		flow, err := s.executeFunnel(ctx, &funnel, TriggerOptions{})
		if err != nil {
			// The upstream transfer already committed; report and move on.
			zap.L().Error("cascade step failed",
				zap.String("funnel", funnel.Name),
				zap.Error(err),
			)
			continue
		}
		if flow != nil {
			s.cascadeFromTank(ctx, funnel.OutTankID, state)
		}
	}
}

func (s *Service) applySourceDebit(ctx context.Context, source domain.FlowSource, amount float64) error {
	switch src := source.(type) {
	case domain.CanvasSource:
		return s.canvasRepo.UpdateFilled(ctx, src.Canvas.ID, src.Canvas.Filled-amount)
	case domain.TankSource:
		return s.tankRepo.UpdateFilled(ctx, src.Tank.ID, src.Tank.Filled-amount)
	default:
		return fmt.Errorf("unknown flow source %T", source)
	}
}

// ListFlows returns the canvas audit trail, newest first, scoped to the
// owning user.
func (s *Service) ListFlows(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]domain.Flow, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	return s.flowRepo.ListByCanvas(ctx, canvas.ID)
}

func (s *Service) GetFlow(ctx context.Context, userID int, canvasExternalID, flowExternalID uuid.UUID) (*domain.Flow, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	flow, err := s.flowRepo.GetByExternalID(ctx, flowExternalID, canvas.ID)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}
