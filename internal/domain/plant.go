package domain

import "time"

// Stage is the ordinal growth phase of a plant, derived from the
// accumulated growth total. It only moves forward, except when a
// harvest resets the plant to StageSeed.
type Stage int

const (
	StageSeed Stage = iota
	StageSeedling
	StageYoung
	StageMature
	StageFlowering
	StageSeeding
)

var stageNames = [...]string{
	"seed",
	"seedling",
	"young plant",
	"mature plant",
	"flowering plant",
	"seed-bearing plant",
}

func (s Stage) String() string {
	if s < StageSeed || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Plant is the per-user garden record. Growth is the accumulated
// credited growth in seconds (wall time × growth rate, only while the
// plant is watered). Stage and Dead are derived; they are recomputed by
// the growth engine on every access and cached here for persistence.
type Plant struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Growth      int64     `json:"growth"`
	Stage       Stage     `json:"stage"`
	Dead        bool      `json:"dead"`
	WateredAt   time.Time `json:"watered_at"`
	// FertilizedUntil is the fertilizer boost expiry. Zero means no
	// active boost. Growth accrued before this instant uses the boosted
	// rate, growth after it uses the baseline.
	FertilizedUntil time.Time `json:"fertilized_until"`
	Score           int       `json:"score"`
	Generation      int       `json:"generation"`
	// RefreshedAt is the watermark of the last growth-engine pass.
	RefreshedAt time.Time `json:"refreshed_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BaseGrowthRate is the growth multiplier before fertilizer, increasing
// with each generation the plant survives to harvest.
func (p *Plant) BaseGrowthRate() float64 {
	gen := p.Generation
	if gen < 1 {
		gen = 1
	}
	return 1.0 + GenerationRateBonus*float64(gen-1)
}

// GrowthRate returns the effective multiplier at the given instant.
func (p *Plant) GrowthRate(now time.Time) float64 {
	rate := p.BaseGrowthRate()
	if now.Before(p.FertilizedUntil) {
		rate *= FertilizerMultiplier
	}
	return rate
}

// Fertilized reports whether a fertilizer boost is active.
func (p *Plant) Fertilized(now time.Time) bool {
	return now.Before(p.FertilizedUntil)
}

// Harvestable reports whether the plant can be sent off: either it has
// died, or it has completed the full lifecycle.
func (p *Plant) Harvestable() bool {
	return p.Dead || p.Stage == StageSeeding
}

// HarvestPhrase is the confirmation text the owner must type to
// harvest the plant.
func (p *Plant) HarvestPhrase() string {
	return "Goodbye " + p.Name
}
