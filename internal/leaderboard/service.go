// Package leaderboard ranks plants by score. The board is computed on
// demand from live plant records; nothing is materialized.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// DefaultLimit caps the board when no limit is configured.
const DefaultLimit = 10

// Service defines the interface for leaderboard operations
type Service interface {
	Daily(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo  repository.Plant
	limit int
	now   func() time.Time
}

// NewService creates a new leaderboard service
func NewService(repo repository.Plant, limit int) Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &service{repo: repo, limit: limit, now: time.Now}
}

// dayStart returns the current day's epoch boundary: midnight UTC.
func (s *service) dayStart() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Daily returns today's top plants by score, ties broken by earliest
// watering. Only plants watered since midnight UTC compete; yesterday's
// board resets at the boundary. Ranks are assigned here so the storage
// layer only has to order.
func (s *service) Daily(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.GetDailyLeaderboard(ctx, s.dayStart(), s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
