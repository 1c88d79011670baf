package sqlite

import (
	"context"
	"errors"
	"time"

	sessionDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/session"
	"github.com/frahmantamala/bragboard/internal/session"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ session.Storage = (*Storage)(nil)

type Storage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var entry sessionDatamodel.Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	entry := sessionDatamodel.Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Where("entry_key IN ?", keys).Delete(&sessionDatamodel.Entry{}).Error
}

// Keys lists the persisted keys in order.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&sessionDatamodel.Entry{}).Order("entry_key ASC").Pluck("entry_key", &keys).Error
	return keys, err
}
