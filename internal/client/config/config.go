package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the console.
//
// Units: RequestTimeout is a time.Duration; RateLimit is requests per second.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	RateLimit         float64
	RateBurst         int
	SessionDir        string
	SessionPassphrase string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.RateLimit = 10
	c.RateBurst = 5
	c.SessionDir = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
