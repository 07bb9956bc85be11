package dto

import (
	"time"

	"github.com/dhanriti/tankflow/internal/domain"
)

type TankRequestDTO struct {
	Name        string   `json:"name" example:"Rent"`
	Description string   `json:"description" example:"Monthly rent money"`
	Capacity    *float64 `json:"capacity" example:"15000"`
	Color       string   `json:"color" example:"#2a9d8f"`
}

type TankResponseDTO struct {
	ExternalID  string              `json:"external_id" example:"571e8a24-7d77-4d61-b2a4-bd6b3e2a0e24"`
	Name        string              `json:"name" example:"Rent"`
	Description string              `json:"description" example:"Monthly rent money"`
	Capacity    *float64            `json:"capacity" example:"15000"`
	Color       string              `json:"color" example:"#2a9d8f"`
	Filled      float64             `json:"filled" example:"7500"`
	Funnels     []FunnelResponseDTO `json:"funnels,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewTankResponse(tank *domain.Tank, funnels []domain.Funnel) TankResponseDTO {
	resp := TankResponseDTO{
		ExternalID:  tank.ExternalID.String(),
		Name:        tank.Name,
		Description: tank.Description,
		Capacity:    tank.Capacity,
		Color:       tank.Color,
		Filled:      tank.Filled,
		CreatedAt:   tank.CreatedAt,
	}
	for _, funnel := range funnels {
		resp.Funnels = append(resp.Funnels, NewFunnelResponse(&funnel))
	}
	return resp
}
