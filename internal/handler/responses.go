package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode into a pooled buffer first; headers are already sent, so a
	// failed encode can only be logged.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	slog.Default().Error(opName+" failed", "error", err, "path", r.URL.Path)
	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Lookup messages
	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgPlantNotFoundError = "Plant not found"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgMailNotFoundError  = "Postcard not found"

	// Plant state messages
	ErrMsgPlantDeadError      = "Your plant is dead. Harvest it to start over."
	ErrMsgWrongStageError     = "The plant is not in the right stage for that"
	ErrMsgNotHarvestableError = "The plant is not ready to harvest"
	ErrMsgAlreadyBoostedError = "Fertilizer is already working"

	// Inventory and economy messages
	ErrMsgInsufficientItemsError = "Not enough items"
	ErrMsgNotEnoughCoinsError    = "Not enough coins"
	ErrMsgNotForSaleError        = "That item is not for sale"

	// Input messages
	ErrMsgInvalidInputError        = "Invalid input"
	ErrMsgConfirmationFailedError  = "That's not the right phrase"
	ErrMsgSubjectRequiredError     = "The postcard needs a subject first"
	ErrMsgUsernameTakenError       = "Username is already taken"
	ErrMsgCannotVisitYourselfError = "You can't do that to your own plant"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Service errors are wrapped, so matching is by errors.Is.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrMailNotFound):
		return http.StatusNotFound, ErrMsgMailNotFoundError
	case errors.Is(err, domain.ErrPlantDead):
		return http.StatusConflict, ErrMsgPlantDeadError
	case errors.Is(err, domain.ErrWrongStage):
		return http.StatusConflict, ErrMsgWrongStageError
	case errors.Is(err, domain.ErrNotHarvestable):
		return http.StatusConflict, ErrMsgNotHarvestableError
	case errors.Is(err, domain.ErrAlreadyBoosted):
		return http.StatusConflict, ErrMsgAlreadyBoostedError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrNotForSale):
		return http.StatusBadRequest, ErrMsgNotForSaleError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrConfirmationFailed):
		return http.StatusBadRequest, ErrMsgConfirmationFailedError
	case errors.Is(err, domain.ErrSubjectRequired):
		return http.StatusBadRequest, ErrMsgSubjectRequiredError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrCannotVisitYourself):
		return http.StatusBadRequest, ErrMsgCannotVisitYourselfError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Wrapped errors with a domain error deeper in the chain.
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short messages pass through; anything long or system-level gets
	// the generic message.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
