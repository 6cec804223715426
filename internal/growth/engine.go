// Package growth implements the plant growth engine. There is no
// background scheduler: all time-derived state (growth, stage, death,
// fertilizer expiry) is recomputed lazily by Refresh whenever a plant
// record is loaded, using the wall-clock time of the triggering
// request.
package growth

import (
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
)

const (
	// DroughtThreshold is how long after a watering the soil stays
	// moist. Growth is only credited for time inside this window;
	// past it the plant stops growing and starts to wilt.
	DroughtThreshold = 24 * time.Hour

	// DeathThreshold is the sustained drought after which the plant
	// dies. Death is terminal until harvest.
	DeathThreshold = 5 * 24 * time.Hour

	// FertilizerDuration is how long one application of fertilizer
	// boosts the growth rate.
	FertilizerDuration = 3 * 24 * time.Hour
)

// stageThresholds maps accumulated credited growth (seconds) to the
// minimum total required for each stage. The mapping is monotone; a
// stage is never left except by harvest reset.
var stageThresholds = [...]int64{
	domain.StageSeed:      0,
	domain.StageSeedling:  int64((24 * time.Hour).Seconds()),
	domain.StageYoung:     int64((3 * 24 * time.Hour).Seconds()),
	domain.StageMature:    int64((5 * 24 * time.Hour).Seconds()),
	domain.StageFlowering: int64((10 * 24 * time.Hour).Seconds()),
	domain.StageSeeding:   int64((15 * 24 * time.Hour).Seconds()),
}

// StageForGrowth returns the stage reached by a growth total.
func StageForGrowth(growth int64) domain.Stage {
	stage := domain.StageSeed
	for s := domain.StageSeed; s <= domain.StageSeeding; s++ {
		if growth >= stageThresholds[s] {
			stage = s
		}
	}
	return stage
}

// Refresh advances a plant to the given instant. It credits growth for
// the elapsed span, recomputes the stage, and applies drought death.
// It mutates only the in-memory record; persisting the result is the
// caller's responsibility. Calling it repeatedly with non-decreasing
// now is idempotent.
func Refresh(p *domain.Plant, now time.Time) {
	if !now.After(p.RefreshedAt) {
		return
	}

	if !p.Dead {
		p.Growth += creditedGrowth(p, now)
		stage := StageForGrowth(p.Growth)
		if stage > p.Stage {
			p.Stage = stage
		}
		if now.Sub(p.WateredAt) >= DeathThreshold {
			p.Dead = true
		}
	}

	p.RefreshedAt = now
}

// creditedGrowth computes the growth seconds earned between the last
// refresh and now. Only time within DroughtThreshold of the last
// watering counts, and spans are split at the fertilizer boundary so
// growth before the boost expiry uses the boosted rate and growth
// after it uses the baseline.
func creditedGrowth(p *domain.Plant, now time.Time) int64 {
	from := p.RefreshedAt
	if p.WateredAt.After(from) {
		from = p.WateredAt
	}
	to := now
	if dry := p.WateredAt.Add(DroughtThreshold); dry.Before(to) {
		to = dry
	}
	if !to.After(from) {
		return 0
	}

	base := p.BaseGrowthRate()
	boosted := base * domain.FertilizerMultiplier

	// Portion of [from, to] under the fertilizer boost.
	boostedSpan := time.Duration(0)
	if p.FertilizedUntil.After(from) {
		end := to
		if p.FertilizedUntil.Before(end) {
			end = p.FertilizedUntil
		}
		boostedSpan = end.Sub(from)
	}
	baseSpan := to.Sub(from) - boostedSpan

	return int64(boostedSpan.Seconds()*boosted + baseSpan.Seconds()*base)
}

// WaterLevel reports the soil moisture as a fraction in [0, 1]:
// 1 right after watering, 0 once the drought threshold has passed.
func WaterLevel(p *domain.Plant, now time.Time) float64 {
	elapsed := now.Sub(p.WateredAt)
	if elapsed <= 0 {
		return 1
	}
	if elapsed >= DroughtThreshold {
		return 0
	}
	return 1 - float64(elapsed)/float64(DroughtThreshold)
}

// HarvestBonus is the one-time score award granted when a plant is
// sent off, proportional to its accumulated growth and generation.
func HarvestBonus(p *domain.Plant) int {
	gen := p.Generation
	if gen < 1 {
		gen = 1
	}
	hours := p.Growth / int64(time.Hour.Seconds())
	return int(hours) * gen
}

// Observation describes the plant's condition as display text.
func Observation(p *domain.Plant, now time.Time) string {
	if p.Dead {
		return "You see the remains of your " + p.Stage.String() + ". Maybe it is time to start over."
	}

	level := WaterLevel(p, now)
	switch {
	case level > 0.5:
		return "Your " + p.Stage.String() + " looks healthy."
	case level > 0:
		return "Your " + p.Stage.String() + " is thirsty. It could use some water."
	default:
		return "Your " + p.Stage.String() + " is wilting badly. Water it before it dies!"
	}
}
