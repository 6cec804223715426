package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain
// consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgIdentityRequired      = "Missing client identity"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Path parameter error messages
	ErrMsgInvalidItemID     = "Invalid item ID"
	ErrMsgInvalidPostcardID = "Invalid postcard ID"

	// Operation error messages
	ErrMsgRegisterUserFailed   = "Failed to register user"
	ErrMsgObservePlantFailed   = "Failed to look at plant"
	ErrMsgGetInventoryFailed   = "Failed to get inventory"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgListGardensFailed    = "Failed to list gardens"
	ErrMsgGetMailboxFailed     = "Failed to get mailbox"
)

// Success messages for API responses
const (
	MsgPostcardSubjectSaved = "Subject saved. Send the postcard when ready."
)
