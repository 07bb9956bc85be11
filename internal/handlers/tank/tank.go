package tank

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dhanriti/tankflow/internal/domain"
	"github.com/dhanriti/tankflow/internal/dto"
	tankservice "github.com/dhanriti/tankflow/internal/service/tankservice"
	"github.com/dhanriti/tankflow/pkg/auth"
	"github.com/dhanriti/tankflow/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, canvasExternalID uuid.UUID, name, description string, capacity *float64, color string) (*domain.Tank, error)
	Get(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID) (*domain.Tank, []domain.Funnel, error)
	List(ctx context.Context, userID int, canvasExternalID uuid.UUID) ([]tankservice.Summary, error)
	Update(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID, name, description string, capacity *float64, color string) (*domain.Tank, error)
	Delete(ctx context.Context, userID int, canvasExternalID, tankExternalID uuid.UUID, strategy tankservice.DeleteStrategy) error
}

type TankHandler struct {
	tankService Service
}

func New(tankService Service) *TankHandler {
	return &TankHandler{
		tankService: tankService,
	}
}

// Create godoc
//
//	@Summary		Create a tank
//	@Description	Create a new tank inside a canvas; a nil capacity means unbounded
//	@Tags			Tanks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			canvasID	path		string				true	"Canvas external id"
//	@Param			request		body		dto.TankRequestDTO	true	"Tank payload"
//	@Success		201			{object}	dto.TankResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/tanks [post]
func (h *TankHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	var req dto.TankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tank, err := h.tankService.Create(r.Context(), userID, canvasID, req.Name, req.Description, req.Capacity, req.Color)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTankResponse(tank, nil))
}

// List godoc
//
//	@Summary		List tanks
//	@Description	List the tanks of a canvas, each with the funnels drawing from it
//	@Tags			Tanks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Success		200			{array}		dto.TankResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Canvas not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/tanks [get]
func (h *TankHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid canvas id")
		return
	}
	summaries, err := h.tankService.List(r.Context(), userID, canvasID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	resp := make([]dto.TankResponseDTO, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, dto.NewTankResponse(&summaries[i].Tank, summaries[i].Funnels))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get a tank
//	@Description	Get a tank with the funnels drawing from it
//	@Tags			Tanks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			tankID		path		string	true	"Tank external id"
//	@Success		200			{object}	dto.TankResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Tank not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/tanks/{tankID} [get]
func (h *TankHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, tankID, err := pathIDs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	tank, funnels, err := h.tankService.Get(r.Context(), userID, canvasID, tankID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTankResponse(tank, funnels))
}

// Update godoc
//
//	@Summary		Update a tank
//	@Description	Update tank name, description, capacity or color. The capacity cannot drop below the current balance.
//	@Tags			Tanks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			canvasID	path		string				true	"Canvas external id"
//	@Param			tankID		path		string				true	"Tank external id"
//	@Param			request		body		dto.TankRequestDTO	true	"Tank payload"
//	@Success		200			{object}	dto.TankResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Tank not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/tanks/{tankID} [put]
func (h *TankHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, tankID, err := pathIDs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.TankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tank, err := h.tankService.Update(r.Context(), userID, canvasID, tankID, req.Name, req.Description, req.Capacity, req.Color)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTankResponse(tank, nil))
}

// Delete godoc
//
//	@Summary		Delete a tank
//	@Description	Soft-delete a tank and the funnels attached to it. The strategy query parameter decides what happens to the remaining balance: "transfer" moves it back to the canvas, "discard" drops it.
//	@Tags			Tanks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			canvasID	path		string	true	"Canvas external id"
//	@Param			tankID		path		string	true	"Tank external id"
//	@Param			strategy	query		string	false	"transfer or discard"	default(transfer)
//	@Success		204			{string}	string	"Tank deleted"
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Tank not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/canvases/{canvasID}/tanks/{tankID} [delete]
func (h *TankHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	canvasID, tankID, err := pathIDs(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	strategy := tankservice.StrategyTransfer
	if s := r.URL.Query().Get("strategy"); s != "" {
		strategy = tankservice.DeleteStrategy(s)
	}
	if err := h.tankService.Delete(r.Context(), userID, canvasID, tankID, strategy); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func pathIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	canvasID, err := uuid.Parse(chi.URLParam(r, "canvasID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid canvas id")
	}
	tankID, err := uuid.Parse(chi.URLParam(r, "tankID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid tank id")
	}
	return canvasID, tankID, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tankservice.ErrCanvasNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Canvas not found")
	case errors.Is(err, tankservice.ErrTankNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Tank not found")
	case errors.Is(err, tankservice.ErrInvalidCapacity),
		errors.Is(err, tankservice.ErrCapacityBelowLevel),
		errors.Is(err, tankservice.ErrInvalidStrategy):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
