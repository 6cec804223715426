package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elizabethaxley/astrobotany/internal/garden"
	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/plant"
	"github.com/elizabethaxley/astrobotany/internal/session"
	"github.com/elizabethaxley/astrobotany/internal/user"
)

// postcardSubjectKey prefixes the session slot holding a drafted
// postcard subject, one slot per recipient.
const postcardSubjectKey = "postcard.subject."

// GardenHandler handles the social garden HTTP requests
type GardenHandler struct {
	gardenSvc garden.Service
	plantSvc  plant.Service
	userSvc   user.Service
	sessions  *session.Store
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenSvc garden.Service, plantSvc plant.Service, userSvc user.Service, sessions *session.Store) *GardenHandler {
	return &GardenHandler{
		gardenSvc: gardenSvc,
		plantSvc:  plantSvc,
		userSvc:   userSvc,
		sessions:  sessions,
	}
}

// PostcardSubjectRequest represents the drafted postcard subject
type PostcardSubjectRequest struct {
	Subject string `json:"subject" validate:"required,max=128"`
}

// PostcardSendRequest carries the postcard body text
type PostcardSendRequest struct {
	Body string `json:"body" validate:"max=2000"`
}

// NeighborPlantResponse is another user's plant as seen from their
// garden.
type NeighborPlantResponse struct {
	Username string        `json:"username"`
	Plant    *plant.Status `json:"plant"`
}

// List handles GET /garden
func (h *GardenHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.gardenSvc.Visit(r.Context(), viewerID)
	if err != nil {
		respondServiceError(w, r, "List gardens", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// ViewPlant handles GET /garden/{userID}/plant
func (h *GardenHandler) ViewPlant(w http.ResponseWriter, r *http.Request) {
	if _, ok := RequireUserID(w, r); !ok {
		return
	}
	ownerID := chi.URLParam(r, "userID")

	owner, err := h.userSvc.GetUser(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, "View plant", err)
		return
	}

	status, err := h.plantSvc.Observe(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, "View plant", err)
		return
	}

	respondJSON(w, http.StatusOK, NeighborPlantResponse{
		Username: owner.Username,
		Plant:    status,
	})
}

// Water handles POST /garden/{userID}/water
func (h *GardenHandler) Water(w http.ResponseWriter, r *http.Request) {
	h.neighborAction(w, r, "Water neighbor plant", h.gardenSvc.WaterPlant)
}

// Search handles POST /garden/{userID}/search
func (h *GardenHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.neighborAction(w, r, "Pick neighbor petal", h.gardenSvc.PickPetal)
}

// DraftPostcardSubject handles POST /garden/{userID}/postcard/subject.
// The subject is parked in the sender's session until they send.
func (h *GardenHandler) DraftPostcardSubject(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	ownerID := chi.URLParam(r, "userID")

	var req PostcardSubjectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Draft postcard subject"); err != nil {
		return
	}

	h.sessions.Load(userID).Set(postcardSubjectKey+ownerID, req.Subject)

	logger.FromContext(r.Context()).Debug("Postcard subject drafted", "from", userID, "to", ownerID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPostcardSubjectSaved})
}

// SendPostcard handles POST /garden/{userID}/postcard/send. The
// drafted subject is consumed whether or not the send succeeds
// downstream of it.
func (h *GardenHandler) SendPostcard(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	ownerID := chi.URLParam(r, "userID")

	var req PostcardSendRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Send postcard"); err != nil {
			return
		}
	}

	subject, _ := h.sessions.Load(userID).Pop(postcardSubjectKey + ownerID)

	msg, err := h.gardenSvc.SendPostcard(r.Context(), userID, ownerID, subject, req.Body)
	if err != nil {
		respondServiceError(w, r, "Send postcard", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// neighborAction wires the common shape of the neighborly actions:
// identity, target from the URL, service call, message response.
func (h *GardenHandler) neighborAction(w http.ResponseWriter, r *http.Request, opName string, fn func(ctx context.Context, actorID, ownerID string) (string, error)) {
	actorID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	ownerID := chi.URLParam(r, "userID")

	msg, err := fn(r.Context(), actorID, ownerID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}
