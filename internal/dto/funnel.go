package dto

import (
	"time"

	"github.com/dhanriti/tankflow/internal/domain"
)

type FunnelRequestDTO struct {
	Name         string  `json:"name" example:"Savings cut"`
	FlowRate     string  `json:"flow_rate" example:"0 0 * * 1"`
	FlowRateType int     `json:"flow_rate_type" example:"2"`
	Flow         float64 `json:"flow" example:"20"`
	FlowType     int     `json:"flow_type" example:"2"`
	InTankID     *string `json:"in_tank_id"`
	OutTankID    string  `json:"out_tank_id" example:"571e8a24-7d77-4d61-b2a4-bd6b3e2a0e24"`
}

type FunnelResponseDTO struct {
	ExternalID   string    `json:"external_id" example:"88a417e7-3a6b-4a93-a23f-cf9aaa45ecf0"`
	Name         string    `json:"name" example:"Savings cut"`
	FlowRate     string    `json:"flow_rate,omitempty" example:"0 0 * * 1"`
	FlowRateType int       `json:"flow_rate_type" example:"2"`
	Flow         float64   `json:"flow" example:"20"`
	FlowType     int       `json:"flow_type" example:"2"`
	InTankID     *string   `json:"in_tank_id"`
	OutTankID    string    `json:"out_tank_id" example:"571e8a24-7d77-4d61-b2a4-bd6b3e2a0e24"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewFunnelResponse(funnel *domain.Funnel) FunnelResponseDTO {
	resp := FunnelResponseDTO{
		ExternalID:   funnel.ExternalID.String(),
		Name:         funnel.Name,
		FlowRate:     funnel.FlowRate,
		FlowRateType: int(funnel.FlowRateType),
		Flow:         funnel.Flow,
		FlowType:     int(funnel.FlowType),
		OutTankID:    funnel.OutTankExternalID.String(),
		CreatedAt:    funnel.CreatedAt,
	}
	if funnel.InTankExternalID != nil {
		inTank := funnel.InTankExternalID.String()
		resp.InTankID = &inTank
	}
	return resp
}
