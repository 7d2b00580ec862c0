package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/redis"
)

// Entry is a cached lookup result. Found is false for identifiers the API
// has no record of.
type Entry struct {
	Found    bool             `json:"found"`
	Envelope *gstapi.Envelope `json:"envelope,omitempty"`
}

// complete reports whether a found entry carries a summary to render.
func (e Entry) complete() bool {
	return !e.Found || (e.Envelope != nil && e.Envelope.Data != nil)
}

// Store is a cache tier shared between processes.
type Store interface {
	// Get returns ErrCacheMiss when id has no entry.
	Get(ctx context.Context, id gstin.GSTIN) (Entry, error)
	Set(ctx context.Context, id gstin.GSTIN, e Entry, ttl time.Duration) error
}

// RedisStore keeps entries as JSON in Redis.
type RedisStore struct {
	kv *redis.Storage
}

func NewRedisStore(kv *redis.Storage) *RedisStore {
	return &RedisStore{kv: kv}
}

func (s *RedisStore) Get(ctx context.Context, id gstin.GSTIN) (Entry, error) {
	raw, err := s.kv.Get(ctx, storeKey(id))
	if errors.Is(err, redis.ErrKeyNotFound) {
		return Entry{}, ErrCacheMiss
	}
	if err != nil {
		return Entry{}, fmt.Errorf("lookup: read %s: %w", id, err)
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, fmt.Errorf("lookup: decode %s: %w", id, err)
	}
	if !e.complete() {
		return Entry{}, fmt.Errorf("lookup: decode %s: %w", id, ErrCorruptEntry)
	}
	return e, nil
}

func (s *RedisStore) Set(ctx context.Context, id gstin.GSTIN, e Entry, ttl time.Duration) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("lookup: encode %s: %w", id, err)
	}
	return s.kv.Set(ctx, storeKey(id), raw, ttl)
}

func storeKey(id gstin.GSTIN) string {
	return "lookup:" + id.String()
}
