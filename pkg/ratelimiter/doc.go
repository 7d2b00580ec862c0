// Package ratelimiter is a token bucket rate limiter with an in-memory store
// and HTTP middleware.
//
// Each key gets a bucket of Capacity tokens that regains RefillRate tokens
// every RefillInterval. A request takes one token; when none are left it is
// denied and the bucket is left untouched.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, clientip.Key))
//
// MemoryStore drops buckets idle for an hour (WithStaleAfter) on a periodic
// sweep (WithCleanupInterval).
package ratelimiter
