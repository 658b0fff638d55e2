package cardbrand

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of the classifier, its HTTP API and the
// command line tool.
type Config struct {
	// IconDir is the directory icon assets are resolved against.
	IconDir string

	// IconExt is the file extension of icon assets, including the dot.
	IconExt string

	// LogLevel is one of debug, info, warn or error. Defaults to info.
	LogLevel string

	// SamplesFile optionally points to a YAML sample catalog used instead
	// of the built-in samples.
	SamplesFile string

	// HTTPAddr is the listen address of the HTTP API.
	HTTPAddr string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		HTTPAddr: "localhost:9090",
	}
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if c.IconExt != "" && !strings.HasPrefix(c.IconExt, ".") {
		return &ConfigError{Field: "IconExt", Reason: "must start with a dot"}
	}
	if _, err := c.Level(); err != nil {
		return &ConfigError{Field: "LogLevel", Reason: err.Error()}
	}
	return nil
}

// Level returns LogLevel as a zap level.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(c.LogLevel)
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	CARDBRAND_ICON_DIR      – directory of icon assets
//	CARDBRAND_ICON_EXT      – icon file extension, e.g. ".png"
//	CARDBRAND_LOG_LEVEL     – debug, info (default), warn or error
//	CARDBRAND_SAMPLES_FILE  – optional YAML sample catalog
//	CARDBRAND_HTTP_ADDR     – HTTP API listen address (default localhost:9090)
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	cfg := DefaultConfig()
	cfg.IconDir = os.Getenv("CARDBRAND_ICON_DIR")
	cfg.IconExt = os.Getenv("CARDBRAND_ICON_EXT")
	cfg.SamplesFile = os.Getenv("CARDBRAND_SAMPLES_FILE")
	if v := os.Getenv("CARDBRAND_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("CARDBRAND_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	return cfg
}
