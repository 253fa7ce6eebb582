package database

import (
	"context"
	"fmt"

	"github.com/lshigami/coursehive/config"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewStore opens only the backend selected by STORE_DRIVER and returns its
// repositories.
func NewStore(lc fx.Lifecycle, cfg *config.Config) (repository.TestRepository, repository.AttemptRepository, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := NewDatabase(lc, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewTestRepository(db), repository.NewAttemptRepository(db), nil

	case config.DriverMongo:
		db, err := NewMongo(lc, cfg)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}
		return repository.NewMongoTestRepository(db), repository.NewMongoAttemptRepository(db), nil

	case config.DriverMemory:
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		store := repository.NewMemoryStore()
		return store.Tests(), store.Attempts(), nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
