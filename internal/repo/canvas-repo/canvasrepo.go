package canvasrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
	"go.uber.org/zap"
)

const canvasColumns = "id, external_id, user_id, name, description, filled, inflow, inflow_rate, created_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanCanvas(row pgx.Row) (*domain.Canvas, error) {
	var c domain.Canvas
	err := row.Scan(&c.ID, &c.ExternalID, &c.UserID, &c.Name, &c.Description, &c.Filled, &c.Inflow, &c.InflowRate, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error) {
	query := `
        INSERT INTO canvases (external_id, user_id, name, description, filled, inflow, inflow_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		canvas.ExternalID, canvas.UserID, canvas.Name, canvas.Description, canvas.Filled, canvas.Inflow, canvas.InflowRate,
	).Scan(&canvas.ID, &canvas.CreatedAt)
	if err != nil {
		zap.L().Error("can't save canvas", zap.Error(err))
		return nil, err
	}
	return canvas, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID uuid.UUID, userID int) (*domain.Canvas, error) {
	query := `
        SELECT ` + canvasColumns + `
        FROM canvases
        WHERE external_id = $1 AND user_id = $2 AND deleted = FALSE
    `
	canvas, err := scanCanvas(r.db.QueryRow(ctx, query, externalID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find canvas", zap.Error(err))
		return nil, err
	}
	return canvas, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.Canvas, error) {
	query := `
        SELECT ` + canvasColumns + `
        FROM canvases
        WHERE user_id = $1 AND deleted = FALSE
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

// ListAll returns every live canvas; the schedule sweep iterates them.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Canvas, error) {
	query := `
        SELECT ` + canvasColumns + `
        FROM canvases
        WHERE deleted = FALSE
        ORDER BY id
    `
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Canvas, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get canvases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var canvases []domain.Canvas
	for rows.Next() {
		canvas, err := scanCanvas(rows)
		if err != nil {
			zap.L().Error("can't scan canvas row", zap.Error(err))
			return nil, err
		}
		canvases = append(canvases, *canvas)
	}
	return canvases, nil
}

func (r *Repository) Update(ctx context.Context, canvas *domain.Canvas) (*domain.Canvas, error) {
	query := `
        UPDATE canvases
        SET name = $1, description = $2, inflow = $3, inflow_rate = $4
        WHERE id = $5 AND deleted = FALSE
        RETURNING ` + canvasColumns + `
    `
	updated, err := scanCanvas(r.db.QueryRow(ctx, query, canvas.Name, canvas.Description, canvas.Inflow, canvas.InflowRate, canvas.ID))
	if err != nil {
		zap.L().Error("can't update canvas", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int) error {
	query := `UPDATE canvases SET deleted = TRUE WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete canvas", zap.Error(err))
		return err
	}
	return nil
}

// GetForUpdate locks the canvas row until the surrounding transaction ends.
// Must be called inside txManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Canvas, error) {
	query := `
        SELECT ` + canvasColumns + `
        FROM canvases
        WHERE id = $1
        FOR UPDATE
    `
	canvas, err := scanCanvas(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't lock canvas", zap.Error(err))
		return nil, err
	}
	return canvas, nil
}

func (r *Repository) UpdateFilled(ctx context.Context, id int, filled float64) error {
	query := `UPDATE canvases SET filled = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, filled, id); err != nil {
		zap.L().Error("can't update canvas balance", zap.Error(err))
		return err
	}
	return nil
}
