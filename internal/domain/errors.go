package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	// Lookup errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgPlantNotFound = "plant not found"
	ErrMsgItemNotFound  = "item not found"
	ErrMsgMailNotFound  = "postcard not found"

	// Precondition errors
	ErrMsgPlantDead      = "plant is dead"
	ErrMsgWrongStage     = "plant is not in the right stage"
	ErrMsgNotHarvestable = "plant is not ready to harvest"
	ErrMsgAlreadyBoosted = "fertilizer is already active"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgNotForSale           = "item is not for sale"

	// Input errors
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgConfirmationFailed  = "confirmation text did not match"
	ErrMsgSubjectRequired     = "postcard subject cannot be blank"
	ErrMsgUsernameTaken       = "username is already taken"
	ErrMsgCannotVisitYourself = "cannot perform a neighborly action on your own plant"

	// Database/system errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors. These are used consistently across all layers
// and wrapped with fmt.Errorf("%w: detail", ...) for context. The four
// recoverable classes the request layer renders as user-facing text
// are: precondition failures, insufficient resources, lookups, and
// invalid input. ErrDatabaseError is the fatal class and is never
// reported to the user as an action outcome.
var (
	// Not found
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrMailNotFound  = errors.New(ErrMsgMailNotFound)

	// Precondition failed
	ErrPlantDead      = errors.New(ErrMsgPlantDead)
	ErrWrongStage     = errors.New(ErrMsgWrongStage)
	ErrNotHarvestable = errors.New(ErrMsgNotHarvestable)
	ErrAlreadyBoosted = errors.New(ErrMsgAlreadyBoosted)

	// Insufficient resource
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrNotForSale           = errors.New(ErrMsgNotForSale)

	// Invalid input
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
	ErrConfirmationFailed  = errors.New(ErrMsgConfirmationFailed)
	ErrSubjectRequired     = errors.New(ErrMsgSubjectRequired)
	ErrUsernameTaken       = errors.New(ErrMsgUsernameTaken)
	ErrCannotVisitYourself = errors.New(ErrMsgCannotVisitYourself)

	// System
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
