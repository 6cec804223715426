package domain

// Item name constants - stable catalog identifiers
const (
	ItemCoin       = "coin"
	ItemPaperclip  = "paper clip"
	ItemFertilizer = "EZ-Grow fertilizer"
	ItemPostcard   = "postcard"
)

// PetalItemName returns the catalog name of the petal item for a color.
func PetalItemName(color string) string {
	return "flower petal [" + color + "]"
}

// FlowerColors is the fixed palette a plant's flower color is drawn
// from, one petal item per color.
var FlowerColors = []string{
	"red",
	"orange",
	"yellow",
	"green",
	"blue",
	"indigo",
	"violet",
	"white",
	"black",
	"gold",
}

// Growth-rate constants
const (
	// FertilizerMultiplier is the temporary growth rate boost applied
	// by one unit of fertilizer.
	FertilizerMultiplier = 1.5

	// GenerationRateBonus is the permanent growth rate gained per
	// completed generation.
	GenerationRateBonus = 0.2
)

// Input length caps
const (
	MaxUsernameLength  = 30
	MaxPlantNameLength = 40
	MaxSubjectLength   = 128
)

// Score rewards for neighborly actions, credited to the plant owner.
const (
	NeighborWaterReward = 25
	NeighborPetalReward = 10
)

// VisitRecencyDays is how recently a plant must have been watered to
// appear in the visitable garden list. Neglected gardens drop out of
// social discovery.
const VisitRecencyDays = 8
