package tankservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
)

// DeleteStrategy decides what happens to a deleted tank's balance.
type DeleteStrategy string

const (
	// StrategyTransfer returns the tank's balance to the canvas main tank.
	StrategyTransfer DeleteStrategy = "transfer"
	// StrategyDiscard drops the funds with the tank.
	StrategyDiscard DeleteStrategy = "discard"
)

var (
	ErrCanvasNotFound     = errors.New("canvas not found")
	ErrTankNotFound       = errors.New("tank not found")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrCapacityBelowLevel = errors.New("capacity cannot be below the current balance")
	ErrInvalidStrategy    = errors.New("unknown delete strategy")
)

type TankRepo interface {
	Create(ctx context.Context, tank *domain.Tank) (*domain.Tank, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Tank, error)
	ListByCanvas(ctx context.Context, canvasID int) ([]domain.Tank, error)
	Update(ctx context.Context, tank *domain.Tank) (*domain.Tank, error)
	SoftDelete(ctx context.Context, id int) error
	GetForUpdate(ctx context.Context, id int) (*domain.Tank, error)
	UpdateFilled(ctx context.Context, id int, filled float64) error
}

type CanvasRepo interface {
	GetByExternalID(ctx context.Context, externalID uuid.UUID, userID int) (*domain.Canvas, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Canvas, error)
	UpdateFilled(ctx context.Context, id int, filled float64) error
}

type FunnelRepo interface {
	ListByInTank(ctx context.Context, tankID int) ([]domain.Funnel, error)
	SoftDeleteByTank(ctx context.Context, tankID int) error
}

type Service struct {
	tankRepo   TankRepo
	canvasRepo CanvasRepo
	funnelRepo FunnelRepo
	txManager  pg.TXManager
}

func New(tankRepo TankRepo, canvasRepo CanvasRepo, funnelRepo FunnelRepo, txManager pg.TXManager) *Service {
	return &Service{
		tankRepo:   tankRepo,
		canvasRepo: canvasRepo,
		funnelRepo: funnelRepo,
		txManager:  txManager,
	}
}

func (s *Service) Create(ctx context.Context, userID int, canvasExternalID uuid.UUID, name, description string, capacity *float64, color string) (*domain.Tank, error) {
	if capacity != nil && *capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}

	tank := &domain.Tank{
		ExternalID:  uuid.New(),
		CanvasID:    canvas.ID,
		Name:        name,
		Description: description,
		Capacity:    capacity,
		Color:       color,
	}
	created, err := s.tankRepo.Create(ctx, tank)
	if err != nil {
		zap.L().Error("failed to create tank", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Get returns the tank together with the funnels drawing from it.
func (s *Service) Get(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID) (*domain.Tank, []domain.Funnel, error) {
	tank, err := s.find(ctx, userID, canvasExternalID, tankExternalID)
	if err != nil {
		return nil, nil, err
	}
	funnels, err := s.funnelRepo.ListByInTank(ctx, tank.ID)
	if err != nil {
		return nil, nil, err
	}
	return tank, funnels, nil
}

// Summary pairs a tank with the funnels drawing from it.
type Summary struct {
	Tank    domain.Tank
	Funnels []domain.Funnel
}

func (s *Service) List(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]Summary, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	tanks, err := s.tankRepo.ListByCanvas(ctx, canvas.ID)
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(tanks))
	for i := range tanks {
		funnels, err := s.funnelRepo.ListByInTank(ctx, tanks[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, Summary{Tank: tanks[i], Funnels: funnels})
	}
	return summaries, nil
}

func (s *Service) Update(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID, name, description string, capacity *float64, color string) (*domain.Tank, error) {
	if capacity != nil && *capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	tank, err := s.find(ctx, userID, canvasExternalID, tankExternalID)
	if err != nil {
		return nil, err
	}
	if capacity != nil && *capacity < tank.Filled {
		return nil, ErrCapacityBelowLevel
	}

	tank.Name = name
	tank.Description = description
	tank.Capacity = capacity
	tank.Color = color

	updated, err := s.tankRepo.Update(ctx, tank)
	if err != nil {
		zap.L().Error("failed to update tank", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete removes the tank and every funnel touching it. With
// StrategyTransfer the tank's balance moves back to the canvas main tank in
// the same transaction; with StrategyDiscard the funds are dropped.
func (s *Service) Delete(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID, strategy DeleteStrategy) error {
	if strategy != StrategyTransfer && strategy != StrategyDiscard {
		return ErrInvalidStrategy
	}

	tank, err := s.find(ctx, userID, canvasExternalID, tankExternalID)
	if err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.tankRepo.GetForUpdate(ctx, tank.ID)
		if err != nil {
			return err
		}

		if strategy == StrategyTransfer && locked.Filled > 0 {
			canvas, err := s.canvasRepo.GetForUpdate(ctx, locked.CanvasID)
			if err != nil {
				return err
			}
			if err := s.canvasRepo.UpdateFilled(ctx, canvas.ID, canvas.Filled+locked.Filled); err != nil {
				return err
			}
			if err := s.tankRepo.UpdateFilled(ctx, locked.ID, 0); err != nil {
				return err
			}
			zap.L().Info("tank balance returned to canvas",
				zap.String("tank", locked.Name),
				zap.Float64("amount", locked.Filled),
			)
		}

		if err := s.funnelRepo.SoftDeleteByTank(ctx, locked.ID); err != nil {
			return err
		}
		return s.tankRepo.SoftDelete(ctx, locked.ID)
	})
}

func (s *Service) find(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID) (*domain.Tank, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, canvasExternalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}
	tank, err := s.tankRepo.GetByExternalID(ctx, tankExternalID, canvas.ID)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, ErrTankNotFound
	}
	return tank, nil
}
