package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gstcheck/pkg/redis"
)

type memKV struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memKV) Get(_ context.Context, key string) *goredis.StringCmd {
	if m.err != nil {
		return goredis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (m *memKV) Set(_ context.Context, key string, value any, exp time.Duration) *goredis.StatusCmd {
	if m.err != nil {
		return goredis.NewStatusResult("", m.err)
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttl[key] = exp
	return goredis.NewStatusResult("OK", nil)
}

func (m *memKV) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, m.err)
}

func TestStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set get delete with prefix", func(t *testing.T) {
		t.Parallel()
		kv := newMemKV()
		s := redis.NewStorage(kv, "gst:")

		require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
		assert.Equal(t, "v", kv.data["gst:k"])
		assert.Equal(t, time.Minute, kv.ttl["gst:k"])

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		require.NoError(t, s.Delete(ctx, "k"))
		_, err = s.Get(ctx, "k")
		assert.ErrorIs(t, err, redis.ErrKeyNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		s := redis.NewStorage(newMemKV(), "")
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, redis.ErrEmptyKey)
		assert.ErrorIs(t, s.Set(ctx, "", nil, 0), redis.ErrEmptyKey)
		assert.ErrorIs(t, s.Delete(ctx, ""), redis.ErrEmptyKey)
	})

	t.Run("backend error passes through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		kv := newMemKV()
		kv.err = boom
		s := redis.NewStorage(kv, "")
		_, err := s.Get(ctx, "k")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, s.Set(ctx, "k", []byte("v"), 0), boom)
	})
}

func TestConnectErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}
