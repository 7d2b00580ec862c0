// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag parsing. Each configuration type
// is parsed once and cached for the life of the process; ResetCache clears the
// cache in tests.
//
//	type LookupConfig struct {
//		CacheSize int           `env:"LOOKUP_CACHE_SIZE" envDefault:"1024"`
//		CacheTTL  time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"15m"`
//	}
//
//	var cfg LookupConfig
//	config.MustLoad(&cfg)
//
// A config type whose pointer implements Validator is checked after parsing;
// a failing Validate surfaces as ErrInvalidConfig and the value is not cached.
package config
