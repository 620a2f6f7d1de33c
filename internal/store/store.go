package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aaronzipp/douze-points/internal/logging"
	"github.com/aaronzipp/douze-points/internal/models"
)

// ErrGameNotFound is returned by Load when no game has been stored yet.
var ErrGameNotFound = errors.New("game not found")

// Store owns the persisted game. Every read-modify-write goes through
// WithLock so concurrent requests cannot lose each other's updates.
type Store interface {
	// Location is the canonical save_file value of the stored game.
	Location() string
	Load(ctx context.Context) (*models.Game, error)
	// Save overwrites the stored game with g.
	Save(ctx context.Context, g *models.Game) error
	// WithLock loads the game, applies fn and saves the result while holding
	// the store's write lock. Nothing is saved when fn fails.
	WithLock(ctx context.Context, fn func(g *models.Game) error) (*models.Game, error)
}

func logger() *logrus.Entry {
	return logging.For("store")
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
