package store

import (
	"context"

	"github.com/epadrino/proyecto-api/internal/config"
	"github.com/epadrino/proyecto-api/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
// It is constructed once at startup and injected, so tests can substitute
// doubles without touching package-level state.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the configured database and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

// DB exposes the underlying connection for lifecycle management
// (migrations at startup, Close at shutdown).
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
