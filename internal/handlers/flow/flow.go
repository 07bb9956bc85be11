package flow

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/dto"
	flowservice "github.com/dhanriti/tankflow/internal/service/flowservice"
	"github.com/dhanriti/tankflow/pkg/auth"
	"github.com/dhanriti/tankflow/pkg/utils"
)

type Service interface {
	ListFlows(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]domain.Flow, error)
	GetFlow(ctx context.Context, userID int, canvasExternalID, flowExternalID uuid.UUID) (*domain.Flow, error)
	Trigger(ctx context.Context, userID int, canvasExternalID uuid.UUID, funnelExternalID *uuid.UUID) (*domain.Flow, error)
}

// Sweeper runs one pass of the schedule sweep on demand.
type Sweeper interface {
	Sweep(ctx context.Context) error
}

type FlowHandler struct {
	flowService Service
	sweeper     Sweeper
	cronKey     string
}

func New(flowService Service, sweeper Sweeper, cronKey string) *FlowHandler {
	return &FlowHandler{
		flowService: flowService,
		sweeper:     sweeper,
		cronKey:     cronKey,
	}
}

// List godoc
//
//	@Summary		List flows
//	@Description	List the audit trail of a canvas, newest first
//	@Tags			Flows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Success		200			{array}		dto.FlowResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/flows [get]
func (h *FlowHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	flows, err := h.flowService.ListFlows(r.Context(), userID, canvasID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFlowListResponse(flows))
}

// Get godoc
//
//	@Summary		Get a flow
//	@Tags			Flows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			flowID		path		string	true	"Flow external id"
//	@Success		200			{object}	dto.FlowResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Flow not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/flows/{flowID} [get]
func (h *FlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	flowID, err := uuid.Parse(chi.URLParam(r, "flowID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid flow id")
		return
	}
	flow, err := h.flowService.GetFlow(r.Context(), userID, canvasID, flowID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFlowResponse(flow))
}

// Trigger godoc
//
//	@Summary		Trigger a flow manually
//	@Description	Fire the canvas inflow, or a single funnel when funnel_id is given, outside of its schedule. Manual flows do not advance the schedule clock.
//	@Tags			Flows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			funnel_id	query		string	false	"Funnel external id"
//	@Success		201			{object}	dto.FlowResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas or funnel not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/flows/trigger [post]
func (h *FlowHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	var funnelID *uuid.UUID
	if raw := r.URL.Query().Get("funnel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid funnel id")
			return
		}
		funnelID = &id
	}
	flow, err := h.flowService.Trigger(r.Context(), userID, canvasID, funnelID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFlowResponse(flow))
}

// Sweep godoc
//
//	@Summary		Run the schedule sweep
//	@Description	Evaluate every canvas and timely funnel and fire the ones whose schedule is due. Guarded by the shared cron key.
//	@Tags			Cron
//	@Produce		json
//	@Param			key	query		string	true	"Cron key"
//	@Success		200	{object}	utils.Response	"Sweep completed"
//	@Failure		403	{object}	utils.Response	"Invalid cron key"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cron/sweep [post]
func (h *FlowHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if h.cronKey == "" {
		zap.L().Warn("sweep requested but no cron key is configured")
		utils.RespondWithError(w, http.StatusForbidden, "Invalid cron key")
		return
	}
	key := r.URL.Query().Get("key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.cronKey)) != 1 {
		utils.RespondWithError(w, http.StatusForbidden, "Invalid cron key")
		return
	}
	if err := h.sweeper.Sweep(r.Context()); err != nil {
		zap.L().Error("sweep failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Sweep completed"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, flowservice.ErrCanvasNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Canvas not found")
	case errors.Is(err, flowservice.ErrFunnelNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Funnel not found")
	case errors.Is(err, flowservice.ErrFlowNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Flow not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
