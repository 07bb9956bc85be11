package flowrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
	"go.uber.org/zap"
)

const flowSelect = `
        SELECT f.id, f.external_id, f.canvas_id, f.funnel_id, f.flowed, f.manual, f.meta,
               f.created_at, fu.external_id
        FROM flows f
        LEFT JOIN funnels fu ON fu.id = f.funnel_id
`

// Repository reads and appends Flow audit rows. Flows are never updated or
// deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanFlow(row pgx.Row) (*domain.Flow, error) {
	var f domain.Flow
	err := row.Scan(&f.ID, &f.ExternalID, &f.CanvasID, &f.FunnelID, &f.Flowed, &f.Manual, &f.Meta, &f.CreatedAt, &f.FunnelExternalID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Create(ctx context.Context, flow *domain.Flow) (*domain.Flow, error) {
	query := `
        INSERT INTO flows (external_id, canvas_id, funnel_id, flowed, manual, meta)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		flow.ExternalID, flow.CanvasID, flow.FunnelID, flow.Flowed, flow.Manual, flow.Meta,
	).Scan(&flow.ID, &flow.CreatedAt)
	if err != nil {
		zap.L().Error("can't save flow", zap.Error(err))
		return nil, err
	}
	return flow, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Flow, error) {
	query := flowSelect + `
        WHERE f.external_id = $1 AND f.canvas_id = $2
    `
	flow, err := scanFlow(r.db.QueryRow(ctx, query, externalID, canvasID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find flow", zap.Error(err))
		return nil, err
	}
	return flow, nil
}

func (r *Repository) ListByCanvas(ctx context.Context, canvasID int) ([]domain.Flow, error) {
	query := flowSelect + `
        WHERE f.canvas_id = $1
        ORDER BY f.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, canvasID)
	if err != nil {
		zap.L().Error("can't get flows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var flows []domain.Flow
	for rows.Next() {
		flow, err := scanFlow(rows)
		if err != nil {
			zap.L().Error("can't scan flow row", zap.Error(err))
			return nil, err
		}
		flows = append(flows, *flow)
	}
	return flows, nil
}

// LastCanvasInflow returns the most recent canvas-level inflow event, manual
// or scheduled. Basis lookup for consequent funnels drawing from the canvas
// main balance.
func (r *Repository) LastCanvasInflow(ctx context.Context, canvasID int) (*domain.Flow, error) {
	query := flowSelect + `
        WHERE f.canvas_id = $1 AND f.funnel_id IS NULL
        ORDER BY f.created_at DESC
        LIMIT 1
    `
	return r.last(ctx, query, canvasID)
}

// LastScheduledCanvasInflow returns the most recent non-manual canvas inflow.
// Manual triggers never advance the schedule clock.
func (r *Repository) LastScheduledCanvasInflow(ctx context.Context, canvasID int) (*domain.Flow, error) {
	query := flowSelect + `
        WHERE f.canvas_id = $1 AND f.funnel_id IS NULL AND f.manual = FALSE
        ORDER BY f.created_at DESC
        LIMIT 1
    `
	return r.last(ctx, query, canvasID)
}

// LastScheduledForFunnel returns the most recent non-manual flow of a funnel.
func (r *Repository) LastScheduledForFunnel(ctx context.Context, funnelID int) (*domain.Flow, error) {
	query := flowSelect + `
        WHERE f.funnel_id = $1 AND f.manual = FALSE
        ORDER BY f.created_at DESC
        LIMIT 1
    `
	return r.last(ctx, query, funnelID)
}

// LastIntoTank returns the most recent flow that arrived in the given tank,
// i.e. through any funnel whose output side it is. Basis lookup for
// consequent funnels drawing from that tank.
func (r *Repository) LastIntoTank(ctx context.Context, tankID int) (*domain.Flow, error) {
	query := flowSelect + `
        WHERE fu.out_tank_id = $1
        ORDER BY f.created_at DESC
        LIMIT 1
    `
	return r.last(ctx, query, tankID)
}

func (r *Repository) last(ctx context.Context, query string, args ...any) (*domain.Flow, error) {
	flow, err := scanFlow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get last flow", zap.Error(err))
		return nil, err
	}
	return flow, nil
}
