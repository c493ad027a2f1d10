// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file. Command-line flags override these values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "COVERAGE_LOG_LEVEL"
	EnvLogFormat = "COVERAGE_LOG_FORMAT"
	EnvWorkers   = "COVERAGE_WORKERS"
	EnvTracing   = "COVERAGE_TRACING"
)

// Tracing exporters.
const (
	TracingOff    = "off"
	TracingStdout = "stdout"
)

// ErrInvalid wraps every malformed setting.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// Workers bounds solver goroutines; 0 means GOMAXPROCS.
	Workers   int
	Tracing   string
}

// Default returns info/text logging, automatic workers and no tracing.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   0,
		Tracing:   TracingOff,
	}
}

// Lookup matches os.LookupEnv.
type Lookup func(key string) (string, bool)

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding existing variables, then resolves
// the Config. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup resolves a Config from lookup, starting at Default.
func FromLookup(lookup Lookup) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvTracing); ok && v != "" {
		cfg.Tracing = strings.ToLower(strings.TrimSpace(v))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	switch c.Tracing {
	case TracingOff, TracingStdout:
	default:
		return fmt.Errorf("%w: tracing %q", ErrInvalid, c.Tracing)
	}
	return nil
}
