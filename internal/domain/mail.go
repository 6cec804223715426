package domain

import "time"

// Postcard is a one-way message delivered to another user's mailbox.
// Sending one consumes a postcard item from the sender's inventory.
type Postcard struct {
	ID         int64     `json:"postcard_id"`
	FromUserID string    `json:"from_user_id"`
	FromName   string    `json:"from_name,omitempty"`
	ToUserID   string    `json:"to_user_id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	IsSeen     bool      `json:"is_seen"`
	CreatedAt  time.Time `json:"created_at"`
}
