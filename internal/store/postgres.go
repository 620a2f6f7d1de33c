package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aaronzipp/douze-points/internal/models"
)

// gameRow is one persisted game, keyed by its save_file location.
type gameRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Document  string    `gorm:"column:document;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (gameRow) TableName() string {
	return "games"
}

// ConnectPostgres opens a gorm handle and checks the connection.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open gorm postgres")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "resolve postgres sql db handle")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

// PostgresStore keeps the game document in a jsonb column. WithLock holds a
// row lock for the whole read-modify-write, so it is safe across processes.
type PostgresStore struct {
	db  *gorm.DB
	key string
}

// NewPostgresStore migrates the games table and returns a store for the game
// identified by key.
func NewPostgresStore(db *gorm.DB, key string) (*PostgresStore, error) {
	if err := db.AutoMigrate(&gameRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate games table")
	}
	return &PostgresStore{db: db, key: key}, nil
}

func (s *PostgresStore) Location() string {
	return s.key
}

func (s *PostgresStore) Load(ctx context.Context) (*models.Game, error) {
	var row gameRow
	err := s.db.WithContext(ctx).Where("id = ?", s.key).First(&row).Error
	if err != nil {
		return nil, s.classify(err, "load")
	}
	return s.decodeRow(row)
}

func (s *PostgresStore) Save(ctx context.Context, g *models.Game) error {
	if g.SaveFile == "" {
		g.SaveFile = s.key
	}
	row, err := s.encodeRow(g)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return s.classify(err, "save")
	}
	return nil
}

func (s *PostgresStore) WithLock(ctx context.Context, fn func(g *models.Game) error) (*models.Game, error) {
	var result *models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row gameRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", s.key).
			First(&row).
			Error
		if err != nil {
			return s.classify(err, "lock")
		}

		g, err := s.decodeRow(row)
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}

		updated, err := s.encodeRow(g)
		if err != nil {
			return err
		}
		err = tx.Model(&gameRow{}).
			Where("id = ?", s.key).
			Updates(map[string]any{
				"document":   updated.Document,
				"updated_at": updated.UpdatedAt,
			}).
			Error
		if err != nil {
			return s.classify(err, "update")
		}
		result = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) decodeRow(row gameRow) (*models.Game, error) {
	g, err := Decode([]byte(row.Document))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding stored game %s", s.key)
	}
	g.SaveFile = s.key
	return g, nil
}

func (s *PostgresStore) encodeRow(g *models.Game) (gameRow, error) {
	data, err := Encode(g)
	if err != nil {
		return gameRow{}, err
	}
	return gameRow{
		ID:        s.key,
		Document:  string(data),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (s *PostgresStore) classify(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrGameNotFound, "%s", s.key)
	}
	logger().WithError(err).WithField("op", op).WithField("game", s.key).Error("postgres store failed")
	return errors.Wrapf(err, "postgres %s %s", op, s.key)
}
