package dto

import (
	"time"

	"github.com/dhanriti/tankflow/internal/domain"
)

type FlowMetaDTO struct {
	Requested     float64 `json:"requested" example:"50"`
	Reduced       bool    `json:"reduced" example:"true"`
	ReducedReason string  `json:"reduced_reason,omitempty" example:"out_tank_space"`
}

type FlowResponseDTO struct {
	ExternalID string      `json:"external_id" example:"c5a9e0a0-0406-43b2-9f06-0f34d1daa0f4"`
	FunnelID   *string     `json:"funnel_id"`
	Flowed     float64     `json:"flowed" example:"20"`
	Manual     bool        `json:"manual" example:"false"`
	Meta       FlowMetaDTO `json:"meta"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewFlowResponse(flow *domain.Flow) FlowResponseDTO {
	resp := FlowResponseDTO{
		ExternalID: flow.ExternalID.String(),
		Flowed:     flow.Flowed,
		Manual:     flow.Manual,
		Meta: FlowMetaDTO{
			Requested:     flow.Meta.Requested,
			Reduced:       flow.Meta.Reduced,
			ReducedReason: flow.Meta.ReducedReason,
		},
		CreatedAt: flow.CreatedAt,
	}
	if flow.FunnelExternalID != nil {
		funnelID := flow.FunnelExternalID.String()
		resp.FunnelID = &funnelID
	}
	return resp
}

func NewFlowListResponse(flows []domain.Flow) []FlowResponseDTO {
	resp := make([]FlowResponseDTO, 0, len(flows))
	for i := range flows {
		resp = append(resp, NewFlowResponse(&flows[i]))
	}
	return resp
}
