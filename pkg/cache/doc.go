// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The cache evicts the least recently used entry once it grows past its
// capacity. Entries may also carry a lifetime, either the cache-wide default
// set with WithTTL or an explicit one passed to PutWithTTL; expired entries
// are dropped lazily on Get or in bulk by Purge.
//
//	c := cache.NewLRUCache[string, *Result](1024,
//		cache.WithTTL[string, *Result](10*time.Minute),
//	)
//	c.Put(key, res)
//	c.PutWithTTL(otherKey, miss, time.Minute)
//
//	if v, ok := c.Get(key); ok {
//		// fresh hit
//	}
//
// WithEvictCallback observes every entry leaving the cache. The callback runs
// under the cache lock and must not call back into it.
//
// All operations are O(1) except Purge and Clear.
package cache
