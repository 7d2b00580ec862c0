package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gstcheck/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testConfig = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

func newBucket(t *testing.T, clk *clock) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clk.Now))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	return b, store
}

func TestBucket_AllowAndRefill(t *testing.T) {
	t.Parallel()

	clk := newClock()
	b, _ := newBucket(t, clk)
	ctx := context.Background()

	for i := range 3 {
		res, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter(clk.Now()))

	// Other keys have their own bucket.
	res, err = b.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	clk.Advance(time.Second)
	res, err = b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)
}

func TestBucket_DeniedRequestsDoNotDrain(t *testing.T) {
	t.Parallel()

	clk := newClock()
	b, _ := newBucket(t, clk)
	ctx := context.Background()

	_, err := b.AllowN(ctx, "a", 3)
	require.NoError(t, err)
	for range 5 {
		res, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
	}

	clk.Advance(time.Second)
	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucket_RefillIsCappedAtCapacity(t *testing.T) {
	t.Parallel()

	clk := newClock()
	b, _ := newBucket(t, clk)
	ctx := context.Background()

	_, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	clk.Advance(time.Hour)

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, testConfig.Capacity-1, res.Remaining)
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock())
	ctx := context.Background()

	_, err := b.AllowN(ctx, "a", 3)
	require.NoError(t, err)
	require.NoError(t, b.Reset(ctx, "a"))

	res, err := b.Allow(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestBucket_Validation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}

	b, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	_, err = b.AllowN(context.Background(), "a", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	clk := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clk.Now),
		ratelimiter.WithStaleAfter(time.Minute),
	)
	defer store.Close()

	ctx := context.Background()
	_, _, err := store.ConsumeTokens(ctx, "old", 1, testConfig)
	require.NoError(t, err)
	clk.Advance(2 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, testConfig)
	require.NoError(t, err)

	assert.Equal(t, 1, store.RemoveStale())
	assert.Equal(t, 1, store.Len())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock())
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	mw := ratelimiter.Middleware(b, func(r *http.Request) string { return r.Header.Get("X-Client") })(ok)

	call := func(client string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if client != "" {
			r.Header.Set("X-Client", client)
		}
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, r)
		return rec
	}

	for range 3 {
		assert.Equal(t, http.StatusNoContent, call("a").Code)
	}

	rec := call("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	for range 5 {
		assert.Equal(t, http.StatusNoContent, call("").Code, "empty key is not limited")
	}
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware_CustomDenied(t *testing.T) {
	t.Parallel()

	b, err := ratelimiter.NewBucket(failingStore{}, testConfig)
	require.NoError(t, err)

	var gotErr error
	mw := ratelimiter.Middleware(b, func(*http.Request) string { return "k" },
		ratelimiter.WithDenied(func(w http.ResponseWriter, _ *http.Request, _ *ratelimiter.Result, err error) {
			gotErr = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.EqualError(t, gotErr, "store down")
}
