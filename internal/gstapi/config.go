package gstapi

import (
	"fmt"
	"net/url"
	"time"
)

// Config is loaded from the environment by pkg/config.
type Config struct {
	BaseURL string        `env:"GSTAPI_BASE_URL,required"`
	Timeout time.Duration `env:"GSTAPI_TIMEOUT" envDefault:"10s"`
	// MaxBodyBytes caps how much of a response is read.
	MaxBodyBytes int64 `env:"GSTAPI_MAX_BODY_BYTES" envDefault:"1048576"`
}

// Validate requires an absolute http(s) base URL and a positive timeout.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: base url must be absolute http(s), got %q", ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
