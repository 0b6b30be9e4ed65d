package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/gomodule/redigo/redis"
)

const (
	snapshotPrefix = "game:"
	indexKey       = "games:live"
)

var ErrMiss = errors.New("no snapshot stored")

func CreateRedisPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", url) },
	}
}

// SnapshotStore keeps one JSON snapshot per session in redis, plus a set of
// live session ids so a restarted server can pick them up again.
type SnapshotStore struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewSnapshotStore(pool *redis.Pool, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{pool: pool, ttl: ttl}
}

func snapshotKey(id string) string {
	return snapshotPrefix + id
}

func (s *SnapshotStore) Save(snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}
	conn := s.pool.Get()
	defer conn.Close()

	if err := Set(snapshotKey(snap.ID), data, s.ttl, conn); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.ID, err)
	}
	if snap.Phase == models.PhaseGameOver {
		return SREM(indexKey, snap.ID, conn)
	}
	return SADD(indexKey, snap.ID, conn)
}

func (s *SnapshotStore) Load(id string) (models.Snapshot, error) {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := Get(snapshotKey(id), conn)
	if errors.Is(err, redis.ErrNil) {
		return models.Snapshot{}, fmt.Errorf("%w: %s", ErrMiss, id)
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return snap, nil
}

func (s *SnapshotStore) Delete(id string) error {
	conn := s.pool.Get()
	defer conn.Close()

	if err := Del(snapshotKey(id), conn); err != nil {
		return err
	}
	return SREM(indexKey, id, conn)
}

// List returns the ids of sessions that are not over yet.
func (s *SnapshotStore) List() ([]string, error) {
	conn := s.pool.Get()
	defer conn.Close()
	return SMEMBERS(indexKey, conn)
}
