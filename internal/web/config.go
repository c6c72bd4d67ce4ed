package web

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the browser front end's settings, read from TTTWEB_* variables
type Config struct {
	Host            string        `env:"TTTWEB_HOST"`
	Port            int           `env:"TTTWEB_PORT" envDefault:"8000"`
	ServerURL       string        `env:"TTTWEB_SERVER" envDefault:"http://localhost:8080/_ah/api/tic_tac_toe/v1"`
	LogLevel        string        `env:"TTTWEB_LOG_LEVEL" envDefault:"info"`
	ReadTimeout     time.Duration `env:"TTTWEB_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"TTTWEB_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"TTTWEB_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CookieMaxAge    time.Duration `env:"TTTWEB_COOKIE_MAX_AGE" envDefault:"720h"`
}

// ParseConfig loads configuration from the environment
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
