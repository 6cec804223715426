package plant

import "time"

// MinWaterInterval is the shortest gap between waterings that still
// has an effect. Watering again inside it is reported as overwatering
// and does not reset the drought clock.
const MinWaterInterval = 15 * time.Minute

// Shake outcome weights. A roll in [0, shakeNothingWeight) finds
// nothing, [shakeNothingWeight, shakeCoinWeight) drops a few coins,
// and the remainder uncovers a curiosity.
const (
	shakeNothingWeight = 0.60
	shakeCoinWeight    = 0.90
	maxShakeCoins      = 5
)

// User-facing action messages
const (
	MsgWaterDrowning  = "You watered your plant only moments ago. Any more and it will drown!"
	MsgWaterHealthy   = "You sprinkle some water over your plant."
	MsgWaterRelief    = "Your plant drinks deeply. That was a close one."
	MsgFertilized     = "You apply the fertilizer. Your plant will grow 1.5x faster for the next 3 days."
	MsgShakeNothing   = "You shake your plant. Nothing happens."
	MsgShakeCoinsFmt  = "You shake your plant and %d coin(s) fall from its leaves!"
	MsgShakePaperclip = "You shake your plant and something glints in the soil... you found a paper clip!"
	MsgPetalFmt       = "You find a delicate %s petal and tuck it away."
	MsgRenameFmt      = "Your plant shall henceforth be known as %q."
	MsgHarvestFmt     = "You send off %s. Generation %d begins from a fresh seed."
	PromptHarvestFmt  = "Type %q to send off your plant."
)

// Log message constants
const (
	LogMsgWaterCalled       = "Water called"
	LogMsgFertilizeCalled   = "Fertilize called"
	LogMsgShakeCalled       = "Shake called"
	LogMsgPickPetalCalled   = "PickPetal called"
	LogMsgHarvestCalled     = "Harvest called"
	LogMsgRenameCalled      = "Rename called"
	LogMsgSweepSettleFailed = "Sweep failed to settle plant"
	LogMsgSweepCompleted    = "Growth sweep completed"
)

// Error message format strings
const (
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitFailed       = "failed to commit transaction: %w"
	ErrMsgGetPlantFailed     = "failed to get plant: %w"
	ErrMsgUpdatePlantFailed  = "failed to update plant: %w"
	ErrMsgGetInventoryFailed = "failed to get inventory: %w"
	ErrMsgUpdateInvFailed    = "failed to update inventory: %w"
)
