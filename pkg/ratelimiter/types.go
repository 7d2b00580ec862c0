package ratelimiter

import "time"

// Config describes a token bucket.
type Config struct {
	// Enabled is read by callers deciding whether to mount the middleware.
	Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	// Capacity is the burst size.
	Capacity int `env:"RATE_LIMIT_CAPACITY" envDefault:"30"`
	// RefillRate tokens are added every RefillInterval.
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"2s"`
}

// Result of a single check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the checked request fits the limit.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait, relative to now.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}
