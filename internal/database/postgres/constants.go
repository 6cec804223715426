package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Inventory Constants
const (
	// EmptyInventoryJSON is the default JSON structure for a new/empty inventory
	EmptyInventoryJSON = `{"slots": []}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToGetUser           = "failed to get user"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
)

// Error Messages - Plant Operations
const (
	ErrMsgFailedToGetPlant         = "failed to get plant"
	ErrMsgFailedToUpdatePlant      = "failed to update plant"
	ErrMsgFailedToListVisitable    = "failed to list visitable plants"
	ErrMsgFailedToGetLeaderboard   = "failed to get leaderboard"
	ErrMsgFailedToListStale        = "failed to list stale plants"
	ErrMsgFailedToGetNeighborWater = "failed to get neighbor watering record"
	ErrMsgFailedToSetNeighborWater = "failed to upsert neighbor watering record"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToUpdateInventory = "failed to update inventory"
	ErrMsgFailedToParseInventory  = "failed to parse inventory"
	ErrMsgFailedToEncodeInventory = "failed to encode inventory"
)

// Error Messages - Mail Operations
const (
	ErrMsgFailedToInsertPostcard = "failed to insert postcard"
	ErrMsgFailedToListInbox      = "failed to list inbox"
	ErrMsgFailedToGetPostcard    = "failed to get postcard"
	ErrMsgFailedToMarkSeen       = "failed to mark postcard seen"
	ErrMsgFailedToCountUnseen    = "failed to count unseen postcards"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItems   = "failed to get items"
	ErrMsgFailedToUpsertItem = "failed to upsert item"
)
