package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted collection, stored as a JSON document under
// its name.
type Snapshot struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// SnapshotRepository reads and writes whole-collection snapshots.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load decodes the snapshot stored under key into dest. It reports false,
// leaving dest untouched, when no snapshot exists.
func (r *SnapshotRepository) Load(ctx context.Context, key string, dest any) (bool, error) {
	var snap Snapshot
	err := r.db.WithContext(ctx).Where("name = ?", key).Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(snap.Payload), dest); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

// Save replaces the snapshot stored under key.
func (r *SnapshotRepository) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	snap := Snapshot{Name: key, Payload: string(payload), UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
}
