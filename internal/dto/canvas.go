package dto

import (
	"time"

	"github.com/dhanriti/tankflow/internal/domain"
)

type CanvasRequestDTO struct {
	Name        string  `json:"name" example:"Salary"`
	Description string  `json:"description" example:"Monthly salary split"`
	Inflow      float64 `json:"inflow" example:"50000"`
	InflowRate  string  `json:"inflow_rate" example:"0 0 1 * *"`
}

type CanvasResponseDTO struct {
	ExternalID  string              `json:"external_id" example:"7d435530-0029-4673-a0cd-dbcd3bd36a13"`
	Name        string              `json:"name" example:"Salary"`
	Description string              `json:"description" example:"Monthly salary split"`
	Filled      float64             `json:"filled" example:"1250.5"`
	Inflow      float64             `json:"inflow" example:"50000"`
	InflowRate  string              `json:"inflow_rate" example:"0 0 1 * *"`
	Funnels     []FunnelResponseDTO `json:"funnels,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewCanvasResponse(canvas *domain.Canvas, funnels []domain.Funnel) CanvasResponseDTO {
	resp := CanvasResponseDTO{
		ExternalID:  canvas.ExternalID.String(),
		Name:        canvas.Name,
		Description: canvas.Description,
		Filled:      canvas.Filled,
		Inflow:      canvas.Inflow,
		InflowRate:  canvas.InflowRate,
		CreatedAt:   canvas.CreatedAt,
	}
	for _, funnel := range funnels {
		resp.Funnels = append(resp.Funnels, NewFunnelResponse(&funnel))
	}
	return resp
}
