package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/garden"
	"github.com/elizabethaxley/astrobotany/internal/logger"
)

// MailboxHandler handles postcard inbox HTTP requests
type MailboxHandler struct {
	gardenSvc garden.Service
}

// NewMailboxHandler creates a new mailbox handler
func NewMailboxHandler(gardenSvc garden.Service) *MailboxHandler {
	return &MailboxHandler{gardenSvc: gardenSvc}
}

// MailboxResponse is the inbox listing with its unseen count
type MailboxResponse struct {
	Unseen    int               `json:"unseen"`
	Postcards []domain.Postcard `json:"postcards"`
}

// List handles GET /mailbox
func (h *MailboxHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	postcards, err := h.gardenSvc.Inbox(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List mailbox", err)
		return
	}

	unseen, err := h.gardenSvc.UnseenCount(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List mailbox", err)
		return
	}

	respondJSON(w, http.StatusOK, MailboxResponse{
		Unseen:    unseen,
		Postcards: postcards,
	})
}

// Read handles GET /mailbox/{id} and marks the postcard seen.
func (h *MailboxHandler) Read(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	raw := chi.URLParam(r, "id")
	postcardID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postcardID <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid postcard ID", "value", raw)
		http.Error(w, ErrMsgInvalidPostcardID, http.StatusBadRequest)
		return
	}

	postcard, err := h.gardenSvc.ReadPostcard(r.Context(), userID, postcardID)
	if err != nil {
		respondServiceError(w, r, "Read postcard", err)
		return
	}

	respondJSON(w, http.StatusOK, postcard)
}
