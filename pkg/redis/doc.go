// Package redis wraps github.com/redis/go-redis/v9 with a retrying Connect,
// a readiness probe and a small namespaced byte Storage.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redis.NewStorage(client, cfg.KeyPrefix)
//	_ = store.Set(ctx, "lookup:27AABCU9603R1ZM", payload, 15*time.Minute)
//
// Storage.Get reports a missing key as ErrKeyNotFound rather than redis.Nil,
// so callers do not import go-redis just to test for a miss.
package redis
