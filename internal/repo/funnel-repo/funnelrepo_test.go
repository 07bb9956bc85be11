package funnelrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dhanriti/tankflow/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func funnelRows(f *domain.Funnel) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "external_id", "canvas_id", "name", "flow_rate", "flow_rate_type",
		"flow", "flow_type", "in_tank_id", "out_tank_id",
		"in_tank_external_id", "out_tank_external_id", "created_at",
	}).AddRow(
		f.ID, f.ExternalID, f.CanvasID, f.Name, f.FlowRate, f.FlowRateType,
		f.Flow, f.FlowType, f.InTankID, f.OutTankID,
		f.InTankExternalID, f.OutTankExternalID, f.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	inTankID := 8
	funnel := &domain.Funnel{
		ExternalID:   uuid.New(),
		CanvasID:     3,
		Name:         "Rent to savings",
		FlowRate:     "0 0 * * 1",
		FlowRateType: domain.Timely,
		Flow:         10,
		FlowType:     domain.Percentage,
		InTankID:     &inTankID,
		OutTankID:    9,
	}
	createdAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO funnels")).
					WithArgs(funnel.ExternalID, funnel.CanvasID, funnel.Name, funnel.FlowRate, funnel.FlowRateType,
						funnel.Flow, funnel.FlowType, funnel.InTankID, funnel.OutTankID).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO funnels")).
					WithArgs(funnel.ExternalID, funnel.CanvasID, funnel.Name, funnel.FlowRate, funnel.FlowRateType,
						funnel.Flow, funnel.FlowType, funnel.InTankID, funnel.OutTankID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), funnel)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

func TestRepository_GetByExternalID(t *testing.T) {
	repo, mock := NewMock(t)

	externalID := uuid.New()
	outTankExternalID := uuid.New()
	funnel := &domain.Funnel{
		ID:                4,
		ExternalID:        externalID,
		CanvasID:          3,
		Name:              "Savings cut",
		FlowRateType:      domain.Consequent,
		Flow:              20,
		FlowType:          domain.Percentage,
		OutTankID:         9,
		OutTankExternalID: outTankExternalID,
		CreatedAt:         time.Now(),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Funnel
	}{
		{
			name: "Funnel found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM funnels f")).
					WithArgs(externalID, 3).
					WillReturnRows(funnelRows(funnel))
			},
			expectErr: false,
			result:    funnel,
		},
		{
			name: "Funnel not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM funnels f")).
					WithArgs(externalID, 3).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM funnels f")).
					WithArgs(externalID, 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByExternalID(context.Background(), externalID, 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListTimelyByCanvas(t *testing.T) {
	repo, mock := NewMock(t)

	funnel := domain.Funnel{
		ID:                4,
		ExternalID:        uuid.New(),
		CanvasID:          3,
		Name:              "Weekly top up",
		FlowRate:          "0 0 * * 1",
		FlowRateType:      domain.Timely,
		Flow:              100,
		FlowType:          domain.Absolute,
		OutTankID:         9,
		OutTankExternalID: uuid.New(),
		CreatedAt:         time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("f.flow_rate_type = $2")).
		WithArgs(3, domain.Timely).
		WillReturnRows(funnelRows(&funnel))

	result, err := repo.ListTimelyByCanvas(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Funnel{funnel}, result)
}

func TestRepository_SoftDeleteByTank(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE funnels SET deleted = TRUE WHERE in_tank_id = $1 OR out_tank_id = $1")).
		WithArgs(8).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err := repo.SoftDeleteByTank(context.Background(), 8)
	assert.NoError(t, err)
}
