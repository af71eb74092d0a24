// Package config loads runtime configuration for the store-rating console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config. Files
//     ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment: a dotenv file (-e/-env, or ./.env when present) is loaded
//     first, then CONSOLE_* variables are decoded (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the store-rating API
//	-t int      request timeout (seconds)
//	-s string   session directory; empty keeps the session in memory only
//	-l string   log level: debug, info, warn or error
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "15s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "rate_limit": 10,
//	  "rate_burst": 5,
//	  "session_dir": "",
//	  "log_level": "warn"
//	}
//
// # Environment
//
//	CONSOLE_API_URL, CONSOLE_TIMEOUT, CONSOLE_RATE_LIMIT, CONSOLE_RATE_BURST,
//	CONSOLE_SESSION_DIR, CONSOLE_SESSION_PASSPHRASE, CONSOLE_LOG_LEVEL
//
// The session passphrase is only read from the environment.
package config
