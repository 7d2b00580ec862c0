package lookup

import (
	"fmt"
	"time"
)

// Config tunes caching and the shared upstream fetch.
type Config struct {
	CacheSize int           `env:"LOOKUP_CACHE_SIZE" envDefault:"1024"`
	CacheTTL  time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"15m"`
	// NotFoundTTL of zero disables caching of not_found results.
	NotFoundTTL  time.Duration `env:"LOOKUP_NOT_FOUND_TTL" envDefault:"2m"`
	FetchTimeout time.Duration `env:"LOOKUP_FETCH_TIMEOUT" envDefault:"10s"`
	RedisEnabled bool          `env:"LOOKUP_REDIS_ENABLED" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		CacheSize:    1024,
		CacheTTL:     15 * time.Minute,
		NotFoundTTL:  2 * time.Minute,
		FetchTimeout: 10 * time.Second,
	}
}

func (c *Config) Validate() error {
	switch {
	case c.CacheSize <= 0:
		return fmt.Errorf("%w: cache size must be positive", ErrInvalidConfig)
	case c.CacheTTL <= 0:
		return fmt.Errorf("%w: cache ttl must be positive", ErrInvalidConfig)
	case c.NotFoundTTL < 0:
		return fmt.Errorf("%w: not found ttl must not be negative", ErrInvalidConfig)
	case c.FetchTimeout <= 0:
		return fmt.Errorf("%w: fetch timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
