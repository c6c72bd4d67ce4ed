package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Profile scopes preferences to one client; several clients can share a server
	Profile string

	// TTL is refreshed on every write; zero keeps preferences forever
	TTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		Profile:      "default",
		TTL:          30 * 24 * time.Hour,
	}
}
