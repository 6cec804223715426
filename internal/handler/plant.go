package handler

import (
	"context"
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/plant"
)

// PlantHandler handles owner-facing plant HTTP requests
type PlantHandler struct {
	plantSvc plant.Service
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantSvc plant.Service) *PlantHandler {
	return &PlantHandler{plantSvc: plantSvc}
}

// RenamePlantRequest represents the request to rename a plant
type RenamePlantRequest struct {
	Name string `json:"name" validate:"required,max=40,excludesall=\x00\n\r\t"`
}

// HarvestPlantRequest carries the optional confirmation phrase. An
// empty body (or empty phrase) yields the prompt instead of the
// harvest.
type HarvestPlantRequest struct {
	Confirmation string `json:"confirmation"`
}

// Observe handles GET /plant
func (h *PlantHandler) Observe(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	status, err := h.plantSvc.Observe(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Observe plant", err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// Info handles GET /plant/info
func (h *PlantHandler) Info(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	details, err := h.plantSvc.Info(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Plant info", err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// Water handles POST /plant/water
func (h *PlantHandler) Water(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Water plant", h.plantSvc.Water)
}

// Fertilize handles POST /plant/fertilize
func (h *PlantHandler) Fertilize(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Fertilize plant", h.plantSvc.Fertilize)
}

// Shake handles POST /plant/shake
func (h *PlantHandler) Shake(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Shake plant", h.plantSvc.Shake)
}

// Search handles POST /plant/search
func (h *PlantHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Search plant", h.plantSvc.PickPetal)
}

// Rename handles POST /plant/name
func (h *PlantHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	var req RenamePlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Rename plant"); err != nil {
		return
	}

	msg, err := h.plantSvc.Rename(r.Context(), userID, req.Name)
	if err != nil {
		respondServiceError(w, r, "Rename plant", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// Harvest handles POST /plant/harvest. Without a confirmation phrase
// the response carries the exact phrase to repeat; with the right
// phrase the plant is sent off and reset.
func (h *PlantHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	// The confirmation body is optional, so a decode failure on an
	// empty body is fine.
	var req HarvestPlantRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Harvest plant"); err != nil {
			return
		}
	}

	result, err := h.plantSvc.Harvest(r.Context(), userID, req.Confirmation)
	if err != nil {
		respondServiceError(w, r, "Harvest plant", err)
		return
	}

	if result.NeedsConfirmation {
		log.Info("Harvest awaiting confirmation", "user_id", userID)
		respondJSON(w, http.StatusOK, result)
		return
	}

	log.Info("Harvest complete", "user_id", userID, "score_bonus", result.ScoreBonus, "generation", result.Generation)
	respondJSON(w, http.StatusOK, result)
}

// action wires the common shape of the simple plant actions: identity,
// service call, message response.
func (h *PlantHandler) action(w http.ResponseWriter, r *http.Request, opName string, fn func(ctx context.Context, userID string) (string, error)) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	msg, err := fn(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}
