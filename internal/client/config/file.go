package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/storerating/internal/flagx"
	"github.com/dmitrijs2005/storerating/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Only the
// keys present in the file override the current values.
type FileConfig struct {
	APIBaseURL     string          `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RateLimit      *float64        `json:"rate_limit" yaml:"rate_limit"`
	RateBurst      *int            `json:"rate_burst" yaml:"rate_burst"`
	SessionDir     *string         `json:"session_dir" yaml:"session_dir"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.RateBurst != nil {
		cfg.RateBurst = *fc.RateBurst
	}
	if fc.SessionDir != nil {
		cfg.SessionDir = *fc.SessionDir
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}
