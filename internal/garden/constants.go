package garden

import "time"

// NeighborRewardInterval is the minimum gap between rewarded waterings
// of the same plant by the same visitor. Watering more often still
// waters the plant but earns no score.
const NeighborRewardInterval = 24 * time.Hour

// soakedWindow mirrors the owner-side overwatering guard: a plant
// watered this recently takes no more water.
const soakedWindow = 15 * time.Minute

// User-facing messages
const (
	MsgNeighborWaterRewarded = "You water your neighbor's plant. Their plant gains %d points for your kindness."
	MsgNeighborWaterPlain    = "You water your neighbor's plant. It has already been thanked for your help today."
	MsgNeighborWaterSoaked   = "The soil is already soaked. Your neighbor's plant needs nothing right now."
	MsgNeighborPetalFmt      = "You gently pick a %s petal. The plant sways its thanks; its owner gains %d points."
	MsgPostcardSent          = "Your postcard is on its way."
)

// Log message constants
const (
	LogMsgVisitCalled        = "Visit called"
	LogMsgWaterPlantCalled   = "WaterPlant called"
	LogMsgPickPetalCalled    = "PickPetal called"
	LogMsgSendPostcardCalled = "SendPostcard called"
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
