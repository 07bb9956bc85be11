package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/dto"
	canvasservice "github.com/dhanriti/tankflow/internal/service/canvasservice"
	"github.com/dhanriti/tankflow/pkg/auth"
	"github.com/dhanriti/tankflow/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, name, description string, inflow float64, inflowRate string) (*domain.Canvas, error)
	Get(ctx context.Context, userID int, externalID uuid.UUID) (*domain.Canvas, []domain.Funnel, error)
	List(ctx context.Context, userID int) ([]canvasservice.Summary, error)
	Update(ctx context.Context, userID int, externalID uuid.UUID, name, description string, inflow float64, inflowRate string) (*domain.Canvas, error)
	Delete(ctx context.Context, userID int, externalID uuid.UUID) error
}

type CanvasHandler struct {
	canvasService Service
}

func New(canvasService Service) *CanvasHandler {
	return &CanvasHandler{
		canvasService: canvasService,
	}
}

// Create godoc
//
//	@Summary		Create a canvas
//	@Description	Create a new canvas with its inflow amount and cron schedule
//	@Tags			Canvases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CanvasRequestDTO	true	"Canvas payload"
//	@Success		201		{object}	dto.CanvasResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases [post]
func (h *CanvasHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CanvasRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	canvas, err := h.canvasService.Create(r.Context(), userID, req.Name, req.Description, req.Inflow, req.InflowRate)
	if err != nil {
		switch {
		case errors.Is(err, canvasservice.ErrInvalidSchedule), errors.Is(err, canvasservice.ErrNegativeInflow):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCanvasResponse(canvas, nil))
}

// List godoc
//
//	@Summary		List canvases
//	@Description	List all canvases owned by the authenticated user, each with the funnels drawing from its main balance
//	@Tags			Canvases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CanvasResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases [get]
func (h *CanvasHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summaries, err := h.canvasService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.CanvasResponseDTO, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, dto.NewCanvasResponse(&summaries[i].Canvas, summaries[i].Funnels))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get a canvas
//	@Description	Get a canvas with the funnels drawing from its main balance
//	@Tags			Canvases
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Success		200			{object}	dto.CanvasResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid canvas id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID} [get]
func (h *CanvasHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	canvas, funnels, err := h.canvasService.Get(r.Context(), userID, canvasID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCanvasResponse(canvas, funnels))
}

// Update godoc
//
//	@Summary		Update a canvas
//	@Description	Update canvas name, description, inflow amount or schedule
//	@Tags			Canvases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			canvasID	path		string					true	"Canvas external id"
//	@Param			request		body		dto.CanvasRequestDTO	true	"Canvas payload"
//	@Success		200			{object}	dto.CanvasResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID} [put]
func (h *CanvasHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	var req dto.CanvasRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	canvas, err := h.canvasService.Update(r.Context(), userID, canvasID, req.Name, req.Description, req.Inflow, req.InflowRate)
	if err != nil {
		switch {
		case errors.Is(err, canvasservice.ErrInvalidSchedule), errors.Is(err, canvasservice.ErrNegativeInflow):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondServiceError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCanvasResponse(canvas, nil))
}

// Delete godoc
//
//	@Summary		Delete a canvas
//	@Description	Soft-delete a canvas together with its tanks and funnels
//	@Tags			Canvases
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Success		204			{string}	string	"Canvas deleted"
//	@Failure		400			{object}	utils.Response	"Invalid canvas id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID} [delete]
func (h *CanvasHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	if err := h.canvasService.Delete(r.Context(), userID, canvasID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, canvasservice.ErrCanvasNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Canvas not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
