package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/storerating/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-s string   session directory (default from Config)
//	-l string   log level (default from Config)
//
// Note: args are filtered with flagx.FilterArgs first, so flags owned by
// other loaders (-c, -e) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "-a", "-t", "-s", "-l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the store-rating API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDir, "s", cfg.SessionDir, "session directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
