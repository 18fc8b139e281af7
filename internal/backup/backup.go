package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
)

// Last-resort copy of the most recently fetched or saved schedule, used
// only when the primary store cannot be read. No versioning and no
// timestamp comparison: a restore can resurrect stale data, and callers
// mark restored state dirty so the user is prompted to re-save.

var ErrNotFound = errors.New("schedule backup not found")

// Snapshot is the whole editor state the fallback keeps: restoring the
// week but not the availability toggle would silently flip a trainer
// back to available.
type Snapshot struct {
	Week        schedule.Week `json:"week"`
	IsAvailable bool          `json:"is_available"`
}

type Store interface {
	Save(ctx context.Context, userID uint, snap Snapshot) error
	Load(ctx context.Context, userID uint) (Snapshot, error)
	Delete(ctx context.Context, userID uint) error
}

func Key(userID uint) string {
	return fmt.Sprintf("schedule_backup_%d", userID)
}

// ===============================
// Redis implementation
// ===============================

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	// Backups are a fallback display, not durable state; a generous TTL
	// keeps abandoned blobs from accumulating.
	return &RedisStore{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

func (s *RedisStore) Save(ctx context.Context, userID uint, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key(userID), b, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, userID uint) (Snapshot, error) {
	empty := Snapshot{Week: schedule.NewWeek()}

	raw, err := s.rdb.Get(ctx, Key(userID)).Result()
	if err == redis.Nil {
		return empty, ErrNotFound
	}
	if err != nil {
		return empty, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return empty, err
	}
	return snap, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, Key(userID)).Err()
}

var _ Store = (*RedisStore)(nil)
