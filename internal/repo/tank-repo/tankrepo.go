package tankrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/pg"
	"go.uber.org/zap"
)

const tankColumns = "id, external_id, canvas_id, name, description, capacity, color, filled, created_at"

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

func scanTank(row pgx.Row) (*domain.Tank, error) {
	var t domain.Tank
	err := row.Scan(&t.ID, &t.ExternalID, &t.CanvasID, &t.Name, &t.Description, &t.Capacity, &t.Color, &t.Filled, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, tank *domain.Tank) (*domain.Tank, error) {
	query := `
        INSERT INTO tanks (external_id, canvas_id, name, description, capacity, color, filled)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		tank.ExternalID, tank.CanvasID, tank.Name, tank.Description, tank.Capacity, tank.Color, tank.Filled,
	).Scan(&tank.ID, &tank.CreatedAt)
	if err != nil {
		zap.L().Error("can't save tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID uuid.UUID, canvasID int) (*domain.Tank, error) {
	query := `
        SELECT ` + tankColumns + `
        FROM tanks
        WHERE external_id = $1 AND canvas_id = $2 AND deleted = FALSE
    `
	tank, err := scanTank(r.db.QueryRow(ctx, query, externalID, canvasID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Tank, error) {
	query := `
        SELECT ` + tankColumns + `
        FROM tanks
        WHERE id = $1 AND deleted = FALSE
    `
	tank, err := scanTank(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) ListByCanvas(ctx context.Context, canvasID int) ([]domain.Tank, error) {
	query := `
        SELECT ` + tankColumns + `
        FROM tanks
        WHERE canvas_id = $1 AND deleted = FALSE
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, canvasID)
	if err != nil {
		zap.L().Error("can't get tanks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tanks []domain.Tank
	for rows.Next() {
		tank, err := scanTank(rows)
		if err != nil {
			zap.L().Error("can't scan tank row", zap.Error(err))
			return nil, err
		}
		tanks = append(tanks, *tank)
	}
	return tanks, nil
}

func (r *Repository) Update(ctx context.Context, tank *domain.Tank) (*domain.Tank, error) {
	query := `
        UPDATE tanks
        SET name = $1, description = $2, capacity = $3, color = $4
        WHERE id = $5 AND deleted = FALSE
        RETURNING ` + tankColumns + `
    `
	updated, err := scanTank(r.db.QueryRow(ctx, query, tank.Name, tank.Description, tank.Capacity, tank.Color, tank.ID))
	if err != nil {
		zap.L().Error("can't update tank", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id int) error {
	query := `UPDATE tanks SET deleted = TRUE WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete tank", zap.Error(err))
		return err
	}
	return nil
}

// GetForUpdate locks the tank row until the surrounding transaction ends.
// Must be called inside txManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Tank, error) {
	query := `
        SELECT ` + tankColumns + `
        FROM tanks
        WHERE id = $1
        FOR UPDATE
    `
	tank, err := scanTank(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't lock tank", zap.Error(err))
		return nil, err
	}
	return tank, nil
}

func (r *Repository) UpdateFilled(ctx context.Context, id int, filled float64) error {
	query := `UPDATE tanks SET filled = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, filled, id); err != nil {
		zap.L().Error("can't update tank balance", zap.Error(err))
		return err
	}
	return nil
}
