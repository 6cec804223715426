package domain

// Event type name constants
const (
	EventTypePlantWatered    = "plant.watered"
	EventTypePlantFertilized = "plant.fertilized"
	EventTypePlantShaken     = "plant.shaken"
	EventTypePetalPicked     = "petal.picked"
	EventTypePlantHarvested  = "plant.harvested"
	EventTypePostcardSent    = "postcard.sent"
	EventTypeItemBought      = "item.bought"
)

// PlantWateredPayload is published after any successful watering,
// self or neighborly.
type PlantWateredPayload struct {
	OwnerID   string `json:"owner_id"`
	ActorID   string `json:"actor_id"`
	Neighbor  bool   `json:"neighbor"`
	Timestamp int64  `json:"timestamp"`
}

// PlantFertilizedPayload is published when a growth boost starts.
type PlantFertilizedPayload struct {
	OwnerID   string `json:"owner_id"`
	Timestamp int64  `json:"timestamp"`
}

// PlantShakenPayload is published after a shake, whatever fell out.
type PlantShakenPayload struct {
	OwnerID   string `json:"owner_id"`
	Timestamp int64  `json:"timestamp"`
}

// PetalPickedPayload is published when a petal is picked from a
// flowering plant.
type PetalPickedPayload struct {
	OwnerID   string `json:"owner_id"`
	ActorID   string `json:"actor_id"`
	Color     string `json:"color"`
	Timestamp int64  `json:"timestamp"`
}

// PlantHarvestedPayload is published after a harvest resets a plant.
type PlantHarvestedPayload struct {
	OwnerID    string `json:"owner_id"`
	Generation int    `json:"generation"`
	ScoreBonus int    `json:"score_bonus"`
	Timestamp  int64  `json:"timestamp"`
}

// PostcardSentPayload is published when a postcard is mailed.
type PostcardSentPayload struct {
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemBoughtPayload is published after a successful store purchase.
type ItemBoughtPayload struct {
	UserID    string `json:"user_id"`
	ItemName  string `json:"item_name"`
	Cost      int    `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}
