package handler

import (
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/logger"
	"github.com/elizabethaxley/astrobotany/internal/user"
)

// RegisterUserRequest represents the request to register a new user.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=30,excludesall=\x00\n\r\t"`
}

// RegisterUserResponse carries the fresh identity. The ID doubles as
// the client fingerprint for subsequent requests.
type RegisterUserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// HandleRegisterUser handles user registration. Registration creates
// the user, their seed and their starter inventory in one go.
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := userService.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		log.Info("User registered successfully", "user_id", u.ID, "username", u.Username)

		respondJSON(w, http.StatusCreated, RegisterUserResponse{
			UserID:   u.ID,
			Username: u.Username,
		})
	}
}
