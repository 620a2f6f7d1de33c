package store

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/models"
)

// MemoryStore keeps the encoded game in process memory. Every Load returns a
// fresh copy, so callers never share participants with the store.
type MemoryStore struct {
	location string
	document []byte
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty memory store that reports location as
// the game's save_file.
func NewMemoryStore(location string) *MemoryStore {
	return &MemoryStore{location: location}
}

func (s *MemoryStore) Location() string {
	return s.location
}

func (s *MemoryStore) Load(ctx context.Context) (*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *MemoryStore) Save(ctx context.Context, g *models.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(g)
}

func (s *MemoryStore) WithLock(ctx context.Context, fn func(g *models.Game) error) (*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := s.save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *MemoryStore) load() (*models.Game, error) {
	if s.document == nil {
		return nil, errors.Wrapf(ErrGameNotFound, "%s", s.location)
	}
	g, err := Decode(s.document)
	if err != nil {
		return nil, err
	}
	g.SaveFile = s.location
	return g, nil
}

func (s *MemoryStore) save(g *models.Game) error {
	if g.SaveFile == "" {
		g.SaveFile = s.location
	}
	data, err := Encode(g)
	if err != nil {
		return err
	}
	s.document = data
	return nil
}
