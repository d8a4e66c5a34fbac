// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "repair_backend/internal/feature/auth/adapters"
	"repair_backend/internal/feature/auth/usecase"
	"repair_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation whose
// expiry is handled by key TTLs. Otherwise, it falls back to MySQL and
// sweeps already-expired rows once at startup.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}

	repo := authadapters.NewSessionMySQL(db)
	if n, err := repo.DeleteExpired(context.Background()); err != nil {
		slog.Warn("failed to sweep expired sessions", "error", err)
	} else if n > 0 {
		slog.Info("swept expired sessions", "count", n)
	}
	return repo
}
