package handler

import (
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/user"
)

// HandleGetInventory handles GET /inventory
func HandleGetInventory(userSvc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(w, r)
		if !ok {
			return
		}

		entries, err := userSvc.ListInventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
