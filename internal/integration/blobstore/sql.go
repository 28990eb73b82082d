package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// sqlStore implements adapter.BlobStore on the blobs table.
// It works with any gorm dialector; sqlite and postgres are the ones wired.
type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a blob store on db. The blobs table must already exist.
func NewSQLStore(db *gorm.DB) adapter.BlobStore {
	return &sqlStore{db: db}
}

func (s *sqlStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob model.BlobModel
	result := s.db.WithContext(ctx).Where(&model.BlobModel{Key: key}).First(&blob)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load blob %s: %w", key, result.Error)
	}
	return blob.Value, true, nil
}

// SaveAll upserts every blob inside one database transaction.
func (s *sqlStore) SaveAll(ctx context.Context, blobs map[string][]byte) error {
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range blobs {
			row := &model.BlobModel{Key: key, Value: value, UpdatedAt: now}
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(row)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save blobs: %w", err)
	}
	return nil
}

func (s *sqlStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
