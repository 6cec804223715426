package handler

import (
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/leaderboard"
)

// HandleGetLeaderboard handles GET /leaderboard
func HandleGetLeaderboard(lbSvc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUserID(w, r); !ok {
			return
		}

		entries, err := lbSvc.Daily(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
