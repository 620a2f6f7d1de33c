package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/aaronzipp/douze-points/internal/models"
)

// FileStore keeps the game as a JSON file on disk.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Location() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LoadFile(s.path)
}

func (s *FileStore) Save(ctx context.Context, g *models.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.SaveFile == "" {
		g.SaveFile = s.path
	}
	return SaveFile(s.path, g)
}

func (s *FileStore) WithLock(ctx context.Context, fn func(g *models.Game) error) (*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := LoadFile(s.path)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}
	if err := SaveFile(s.path, g); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadFile reads the game document at path. The returned game's SaveFile is
// set to path.
func LoadFile(path string) (*models.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrGameNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	g, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	g.SaveFile = path
	return g, nil
}

// SaveFile writes g to path. The document goes to a temporary file in the
// same directory first and is renamed over path once it is fully on disk.
func SaveFile(path string, g *models.Game) (err error) {
	data, err := Encode(g)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "setting mode on %s", tmpName)
	}
	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}

	logger().WithField("path", path).WithField("participants", len(g.Participants)).Debug("game saved")
	return nil
}
