package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elizabethaxley/astrobotany/internal/database/postgres"
	"github.com/elizabethaxley/astrobotany/internal/repository"
)

// Repositories holds all repository implementations used by the
// application. This provides a centralized location for repository
// initialization and makes dependency injection clearer.
type Repositories struct {
	User  repository.User
	Plant repository.Plant
	Mail  repository.Mail
	Item  repository.Item
}

// InitializeRepositories creates all repository implementations over
// the shared database pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:  postgres.NewUserRepository(dbPool),
		Plant: postgres.NewPlantRepository(dbPool),
		Mail:  postgres.NewMailRepository(dbPool),
		Item:  postgres.NewItemRepository(dbPool),
	}
}
