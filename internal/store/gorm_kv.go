package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted collection blob.
type Entry struct {
	Key       string         `gorm:"primaryKey;column:key"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormKV implements KV on a gorm connection (sqlite locally).
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *GormKV) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}
