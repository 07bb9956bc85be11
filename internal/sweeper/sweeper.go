package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dhanriti/tankflow/internal/config"
	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/service/flowservice"
	"github.com/dhanriti/tankflow/pkg/cronexpr"
)

var sweepingCanvases sync.Map

type CanvasRepo interface {
	ListAll(ctx context.Context) ([]domain.Canvas, error)
}

type FunnelRepo interface {
	ListTimelyByCanvas(ctx context.Context, canvasID int) ([]domain.Funnel, error)
}

type FlowRepo interface {
	LastScheduledCanvasInflow(ctx context.Context, canvasID int) (*domain.Flow, error)
	LastScheduledForFunnel(ctx context.Context, funnelID int) (*domain.Flow, error)
}

type FlowExecutor interface {
	TriggerCanvasInflow(ctx context.Context, canvas *domain.Canvas, opts flowservice.TriggerOptions) (*domain.Flow, error)
	TriggerFunnel(ctx context.Context, funnel *domain.Funnel, opts flowservice.TriggerOptions) (*domain.Flow, error)
}

// Service is the periodic schedule sweep: it walks every canvas, fires due
// canvas inflows and due timely funnels, and leaves consequent funnels to the
// executor's cascade. Runs from an internal ticker and on demand through the
// cron endpoint.
type Service struct {
	canvasRepo CanvasRepo
	funnelRepo FunnelRepo
	flowRepo   FlowRepo
	executor   FlowExecutor
	workerPool WorkerPoolI
	interval   time.Duration
}

func New(cfg *config.Config, canvasRepo CanvasRepo, funnelRepo FunnelRepo, flowRepo FlowRepo, executor FlowExecutor) *Service {
	return &Service{
		canvasRepo: canvasRepo,
		funnelRepo: funnelRepo,
		flowRepo:   flowRepo,
		executor:   executor,
		workerPool: NewWorkerPool(10),
		interval:   cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweep service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweep service")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				zap.L().Error("Sweep run failed", zap.Error(err))
			}
		}
	}
}

// Sweep runs one pass over all canvases. Re-running it immediately is safe:
// the last-flow reference keeps every schedule not-yet-due until its next
// instant actually passes.
func (s *Service) Sweep(ctx context.Context) error {
	canvases, err := s.canvasRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch canvases for sweep", zap.Error(err))
		return err
	}

	var g errgroup.Group
	for _, canvas := range canvases {
		canvas := canvas

		if _, loaded := sweepingCanvases.LoadOrStore(canvas.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingCanvases.Delete(canvas.ID)
				err := s.sweepCanvas(ctx, canvas)
				done <- err
				return err
			})
			if err != nil {
				sweepingCanvases.Delete(canvas.ID)
				return err
			}
			return <-done
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping canvases", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) sweepCanvas(ctx context.Context, canvas domain.Canvas) error {
	now := time.Now()

	due, err := s.canvasInflowDue(ctx, &canvas, now)
	if err != nil {
		return err
	}
	if due {
		zap.L().Info("Triggering canvas inflow", zap.String("canvas", canvas.Name))
		if _, err := s.executor.TriggerCanvasInflow(ctx, &canvas, flowservice.TriggerOptions{}); err != nil {
			zap.L().Error("Canvas inflow failed", zap.String("canvas", canvas.Name), zap.Error(err))
		}
	}

	funnels, err := s.funnelRepo.ListTimelyByCanvas(ctx, canvas.ID)
	if err != nil {
		return err
	}
	for i := range funnels {
		funnel := funnels[i]

		due, err := s.funnelDue(ctx, &funnel, now)
		if err != nil {
			zap.L().Error("Funnel due-check failed", zap.String("funnel", funnel.Name), zap.Error(err))
			continue
		}
		if !due {
			continue
		}

		zap.L().Info("Triggering funnel flow", zap.String("funnel", funnel.Name))
		opts := flowservice.TriggerOptions{TimelyTrigger: true, BypassLastFlow: true}
		if _, err := s.executor.TriggerFunnel(ctx, &funnel, opts); err != nil {
			// An already-committed upstream inflow stays committed; keep
			// sweeping the remaining funnels.
			zap.L().Error("Funnel flow failed", zap.String("funnel", funnel.Name), zap.Error(err))
		}
	}
	return nil
}

// canvasInflowDue anchors the schedule on the newest non-manual inflow, or
// the canvas creation time when it never fired.
func (s *Service) canvasInflowDue(ctx context.Context, canvas *domain.Canvas, now time.Time) (bool, error) {
	ref := canvas.CreatedAt
	last, err := s.flowRepo.LastScheduledCanvasInflow(ctx, canvas.ID)
	if err != nil {
		return false, err
	}
	if last != nil {
		ref = last.CreatedAt
	}
	return cronexpr.Due(canvas.InflowRate, ref, now)
}

func (s *Service) funnelDue(ctx context.Context, funnel *domain.Funnel, now time.Time) (bool, error) {
	ref := funnel.CreatedAt
	last, err := s.flowRepo.LastScheduledForFunnel(ctx, funnel.ID)
	if err != nil {
		return false, err
	}
	if last != nil {
		ref = last.CreatedAt
	}
	return cronexpr.Due(funnel.FlowRate, ref, now)
}
