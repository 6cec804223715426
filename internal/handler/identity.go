package handler

import (
	"context"
	"net/http"
)

// HeaderClientFingerprint carries the caller's identity: the user ID
// issued at registration. Resolving a transport-level certificate to
// this value is the front proxy's job, not ours.
const HeaderClientFingerprint = "X-Client-Fingerprint"

type contextKey string

const userIDKey contextKey = "userID"

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// RequireUserID extracts the authenticated user ID or writes a 401.
// If ok is false the handler should return.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, ErrMsgIdentityRequired, http.StatusUnauthorized)
		return "", false
	}
	return id, true
}
