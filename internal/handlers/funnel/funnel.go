package funnel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/dto"
	funnelservice "github.com/dhanriti/tankflow/internal/service/funnelservice"
	"github.com/dhanriti/tankflow/pkg/auth"
	"github.com/dhanriti/tankflow/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, canvasExternalID uuid.UUID, in funnelservice.Input) (*domain.Funnel, error)
	Get(ctx context.Context, userID int, canvasExternalID, funnelExternalID uuid.UUID) (*domain.Funnel, error)
	List(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]domain.Funnel, error)
	Delete(ctx context.Context, userID int, canvasExternalID, funnelExternalID uuid.UUID) error
}

type FunnelHandler struct {
	funnelService Service
}

func New(funnelService Service) *FunnelHandler {
	return &FunnelHandler{
		funnelService: funnelService,
	}
}

// Create godoc
//
//	@Summary		Create a funnel
//	@Description	Create a transfer rule between the canvas main balance (or a tank) and a destination tank. Rejected when the edge would close a cycle.
//	@Tags			Funnels
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			canvasID	path		string					true	"Canvas external id"
//	@Param			request		body		dto.FunnelRequestDTO	true	"Funnel payload"
//	@Success		201			{object}	dto.FunnelResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas or tank not found"
//	@Failure		409			{object}	utils.Response	"Funnel would close a cycle"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/funnels [post]
func (h *FunnelHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	var req dto.FunnelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in, err := inputFromRequest(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	funnel, err := h.funnelService.Create(r.Context(), userID, canvasID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFunnelResponse(funnel))
}

// List godoc
//
//	@Summary		List funnels
//	@Description	List all funnels of a canvas
//	@Tags			Funnels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Success		200			{array}		dto.FunnelResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/funnels [get]
func (h *FunnelHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	funnels, err := h.funnelService.List(r.Context(), userID, canvasID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	resp := make([]dto.FunnelResponseDTO, 0, len(funnels))
	for i := range funnels {
		resp = append(resp, dto.NewFunnelResponse(&funnels[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get a funnel
//	@Tags			Funnels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			funnelID	path		string	true	"Funnel external id"
//	@Success		200			{object}	dto.FunnelResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Funnel not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/funnels/{funnelID} [get]
func (h *FunnelHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, funnelID, err := pathIDs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	funnel, err := h.funnelService.Get(r.Context(), userID, canvasID, funnelID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewFunnelResponse(funnel))
}

// Delete godoc
//
//	@Summary		Delete a funnel
//	@Description	Soft-delete a funnel. Past flows through it stay in the audit trail.
//	@Tags			Funnels
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			funnelID	path		string	true	"Funnel external id"
//	@Success		204			{string}	string	"Funnel deleted"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Funnel not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/funnels/{funnelID} [delete]
func (h *FunnelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, funnelID, err := pathIDs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.funnelService.Delete(r.Context(), userID, canvasID, funnelID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func inputFromRequest(req *dto.FunnelRequestDTO) (funnelservice.Input, error) {
	in := funnelservice.Input{
		Name:         req.Name,
		FlowRate:     req.FlowRate,
		FlowRateType: domain.FlowRateType(req.FlowRateType),
		Flow:         req.Flow,
		FlowType:     domain.FlowType(req.FlowType),
	}
	outTankID, err := uuid.Parse(req.OutTankID)
	if err != nil {
		return in, errors.New("invalid out_tank_id")
	}
	in.OutTankExternalID = outTankID
	if req.InTankID != nil {
		inTankID, err := uuid.Parse(*req.InTankID)
		if err != nil {
			return in, errors.New("invalid in_tank_id")
		}
		in.InTankExternalID = &inTankID
	}
	return in, nil
}

func pathIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid canvas id")
	}
	funnelID, err := uuid.Parse(chi.URLParam(r, "funnelID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid funnel id")
	}
	return canvasID, funnelID, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, funnelservice.ErrCanvasNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Canvas not found")
	case errors.Is(err, funnelservice.ErrTankNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Tank not found")
	case errors.Is(err, funnelservice.ErrFunnelNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Funnel not found")
	case errors.Is(err, funnelservice.ErrFunnelCycle):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, funnelservice.ErrSelfFunnel),
		errors.Is(err, funnelservice.ErrNegativeFlow),
		errors.Is(err, funnelservice.ErrInvalidFlowType),
		errors.Is(err, funnelservice.ErrInvalidRateType),
		errors.Is(err, funnelservice.ErrInvalidSchedule),
		errors.Is(err, funnelservice.ErrScheduleRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
