package handler

import (
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/store"
)

// StoreHandler handles store HTTP requests
type StoreHandler struct {
	storeSvc store.Service
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeSvc store.Service) *StoreHandler {
	return &StoreHandler{storeSvc: storeSvc}
}

// ConfirmPurchaseRequest carries the buyer's answer to a quote
type ConfirmPurchaseRequest struct {
	Answer string `json:"answer" validate:"required,max=10"`
}

// Browse handles GET /store
func (h *StoreHandler) Browse(w http.ResponseWriter, r *http.Request) {
	if _, ok := RequireUserID(w, r); !ok {
		return
	}

	items := h.storeSvc.Browse(r.Context())
	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// Purchase handles POST /store/purchase/{itemID}. The purchase is
// quoted and parked; nothing is charged until the buyer confirms.
func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	itemID, ok := GetIntURLParam(r, w, "itemID", ErrMsgInvalidItemID)
	if !ok {
		return
	}

	quote, err := h.storeSvc.StartPurchase(r.Context(), userID, itemID)
	if err != nil {
		respondServiceError(w, r, "Start purchase", err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// Confirm handles POST /store/confirm
func (h *StoreHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}

	var req ConfirmPurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Confirm purchase"); err != nil {
		return
	}

	msg, err := h.storeSvc.ConfirmPurchase(r.Context(), userID, req.Answer)
	if err != nil {
		respondServiceError(w, r, "Confirm purchase", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}
