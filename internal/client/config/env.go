package config

import (
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/storerating/internal/flagx"
	"github.com/dmitrijs2005/storerating/internal/timex"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// envConfig mirrors Config; unset or empty variables decode to zero values
// and leave the current settings alone.
type envConfig struct {
	APIBaseURL        string         `env:"CONSOLE_API_URL"`
	RequestTimeout    timex.Duration `env:"CONSOLE_TIMEOUT"`
	RateLimit         float64        `env:"CONSOLE_RATE_LIMIT"`
	RateBurst         int            `env:"CONSOLE_RATE_BURST"`
	SessionDir        string         `env:"CONSOLE_SESSION_DIR"`
	SessionPassphrase string         `env:"CONSOLE_SESSION_PASSPHRASE"`
	LogLevel          string         `env:"CONSOLE_LOG_LEVEL"`
}

// parseEnv loads the dotenv file, then overlays cfg with CONSOLE_* variables.
// Variables already set in the process environment win over the dotenv file.
func parseEnv(cfg *Config, args []string) error {
	if path := flagx.EnvFile(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			return err
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return err
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = ec.RequestTimeout.Duration
	}
	if ec.RateLimit > 0 {
		cfg.RateLimit = ec.RateLimit
	}
	if ec.RateBurst > 0 {
		cfg.RateBurst = ec.RateBurst
	}
	if ec.SessionDir != "" {
		cfg.SessionDir = ec.SessionDir
	}
	if ec.SessionPassphrase != "" {
		cfg.SessionPassphrase = ec.SessionPassphrase
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
