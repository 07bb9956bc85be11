package funnelrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
	"go.uber.org/zap"
)

const funnelSelect = `
        SELECT f.id, f.external_id, f.canvas_id, f.name, f.flow_rate, f.flow_rate_type,
               f.flow, f.flow_type, f.in_tank_id, f.out_tank_id,
               it.external_id, ot.external_id, f.created_at
        FROM funnels f
        LEFT JOIN tanks it ON it.id = f.in_tank_id
        JOIN tanks ot ON ot.id = f.out_tank_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanFunnel(row pgx.Row) (*domain.Funnel, error) {
	var f domain.Funnel
	err := row.Scan(
		&f.ID, &f.ExternalID, &f.CanvasID, &f.Name, &f.FlowRate, &f.FlowRateType,
		&f.Flow, &f.FlowType, &f.InTankID, &f.OutTankID,
		&f.InTankExternalID, &f.OutTankExternalID, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Create(ctx context.Context, funnel *domain.Funnel) (*domain.Funnel, error) {
	query := `
        INSERT INTO funnels (external_id, canvas_id, name, flow_rate, flow_rate_type, flow, flow_type, in_tank_id, out_tank_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		funnel.ExternalID, funnel.CanvasID, funnel.Name, funnel.FlowRate, funnel.FlowRateType,
		funnel.Flow, funnel.FlowType, funnel.InTankID, funnel.OutTankID,
	).Scan(&funnel.ID, &funnel.CreatedAt)
	if err != nil {
		zap.L().Error("can't save funnel", zap.Error(err))
		return nil, err
	}
	return funnel, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Funnel, error) {
	query := funnelSelect + `
        WHERE f.external_id = $1 AND f.canvas_id = $2 AND f.deleted = FALSE
    `
	funnel, err := scanFunnel(r.db.QueryRow(ctx, query, externalID, canvasID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find funnel", zap.Error(err))
		return nil, err
	}
	return funnel, nil
}

func (r *Repository) ListByCanvas(ctx context.Context, canvasID int) ([]domain.Funnel, error) {
	query := funnelSelect + `
        WHERE f.canvas_id = $1 AND f.deleted = FALSE
        ORDER BY f.created_at
    `
	return r.list(ctx, query, canvasID)
}

// ListByInTank returns the funnels drawing from the given tank; these are the
// downstream edges re-evaluated after money arrives in it.
func (r *Repository) ListByInTank(ctx context.Context, tankID int) ([]domain.Funnel, error) {
	query := funnelSelect + `
        WHERE f.in_tank_id = $1 AND f.deleted = FALSE
        ORDER BY f.created_at
    `
	return r.list(ctx, query, tankID)
}

// ListCanvasSourced returns the funnels drawing from the canvas main balance.
func (r *Repository) ListCanvasSourced(ctx context.Context, canvasID int) ([]domain.Funnel, error) {
	query := funnelSelect + `
        WHERE f.canvas_id = $1 AND f.in_tank_id IS NULL AND f.deleted = FALSE
        ORDER BY f.created_at
    `
	return r.list(ctx, query, canvasID)
}

// ListTimelyByCanvas returns the schedule-driven funnels the sweep evaluates.
func (r *Repository) ListTimelyByCanvas(ctx context.Context, canvasID int) ([]domain.Funnel, error) {
	query := funnelSelect + `
        WHERE f.canvas_id = $1 AND f.flow_rate_type = $2 AND f.deleted = FALSE
        ORDER BY f.created_at
    `
	return r.list(ctx, query, canvasID, domain.Timely)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Funnel, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get funnels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var funnels []domain.Funnel
	for rows.Next() {
		funnel, err := scanFunnel(rows)
		if err != nil {
			zap.L().Error("can't scan funnel row", zap.Error(err))
			return nil, err
		}
		funnels = append(funnels, *funnel)
	}
	return funnels, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int) error {
	query := `UPDATE funnels SET deleted = TRUE WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete funnel", zap.Error(err))
		return err
	}
	return nil
}

// SoftDeleteByTank removes every funnel touching the given tank. Used when
// the tank itself is deleted.
func (r *Repository) SoftDeleteByTank(ctx context.Context, tankID int) error {
	query := `UPDATE funnels SET deleted = TRUE WHERE in_tank_id = $1 OR out_tank_id = $1`
	if _, err := r.db.Exec(ctx, query, tankID); err != nil {
		zap.L().Error("can't delete funnels of tank", zap.Error(err))
		return err
	}
	return nil
}
