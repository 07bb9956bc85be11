package canvasservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/pkg/cronexpr"
)

var (
	ErrCanvasNotFound  = errors.New("canvas not found")
	ErrInvalidSchedule = errors.New("invalid schedule expression")
	ErrNegativeInflow  = errors.New("inflow must not be negative")
)

type CanvasRepo interface {
	Create(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID, userID int) (*domain.Canvas, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Canvas, error)
	Update(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error)
	SoftDelete(ctx context.Context, id int) error
}

type FunnelRepo interface {
	ListCanvasSourced(ctx context.Context, canvasID int) ([]domain.Funnel, error)
}

type Service struct {
	canvasRepo CanvasRepo
	funnelRepo FunnelRepo
}

func New(canvasRepo CanvasRepo, funnelRepo FunnelRepo) *Service {
	return &Service{
		canvasRepo: canvasRepo,
		funnelRepo: funnelRepo,
	}
}

// Create validates the inflow schedule before anything is persisted.
func (s *Service) Create(ctx context.Context, userID int, name, description string, inflow float64, inflowRate string) (*domain.Canvas, error) {
	if inflow < 0 {
		return nil, ErrNegativeInflow
	}
	if err := cronexpr.Validate(inflowRate); err != nil {
		zap.L().Info("rejected canvas schedule", zap.String("inflow_rate", inflowRate), zap.Error(err))
		return nil, ErrInvalidSchedule
	}

	canvas := &domain.Canvas{
		ExternalID:  uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Inflow:      inflow,
		InflowRate:  inflowRate,
	}
	created, err := s.canvasRepo.Create(ctx, canvas)
	if err != nil {
		zap.L().Error("failed to create canvas", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Get returns the canvas together with the funnels drawing from its main
// balance.
func (s *Service) Get(ctx context.Context, userID int, externalID uuid.UUID) (*domain.Canvas, []domain.Funnel, error) {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, externalID, userID)
	if err != nil {
		return nil, nil, err
	}
	if canvas == nil {
		return nil, nil, ErrCanvasNotFound
	}
	funnels, err := s.funnelRepo.ListCanvasSourced(ctx, canvas.ID)
	if err != nil {
		return nil, nil, err
	}
	return canvas, funnels, nil
}

// Summary pairs a canvas with the funnels drawing from its main balance.
type Summary struct {
	Canvas  domain.Canvas
	Funnels []domain.Funnel
}

func (s *Service) List(ctx context.Context, userID int) ([]Summary, error) {
	canvases, err := s.canvasRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list canvases", zap.Error(err))
		return nil, err
	}
	summaries := make([]Summary, 0, len(canvases))
	for i := range canvases {
		funnels, err := s.funnelRepo.ListCanvasSourced(ctx, canvases[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, Summary{Canvas: canvases[i], Funnels: funnels})
	}
	return summaries, nil
}

func (s *Service) Update(ctx context.Context, userID int, externalID uuid.UUID, name, description string, inflow float64, inflowRate string) (*domain.Canvas, error) {
	if inflow < 0 {
		return nil, ErrNegativeInflow
	}
	if err := cronexpr.Validate(inflowRate); err != nil {
		return nil, ErrInvalidSchedule
	}

	canvas, err := s.canvasRepo.GetByExternalID(ctx, externalID, userID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		return nil, ErrCanvasNotFound
	}

	canvas.Name = name
	canvas.Description = description
	canvas.Inflow = inflow
	canvas.InflowRate = inflowRate

	updated, err := s.canvasRepo.Update(ctx, canvas)
	if err != nil {
		zap.L().Error("failed to update canvas", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID int, externalID uuid.UUID) error {
	canvas, err := s.canvasRepo.GetByExternalID(ctx, externalID, userID)
	if err != nil {
		return err
	}
	if canvas == nil {
		return ErrCanvasNotFound
	}
	return s.canvasRepo.SoftDelete(ctx, canvas.ID)
}
