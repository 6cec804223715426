package domain

import "time"

// User represents a registered gardener. Every user owns exactly one
// plant and one inventory, both created at registration.
type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
