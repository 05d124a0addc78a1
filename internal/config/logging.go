package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rshade/headway/internal/logging"
)

// ErrInvalidLogFormat indicates an unknown logging format.
var ErrInvalidLogFormat = errors.New("log format must be 'console' or 'json'")

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
	// Format is "console" for human-readable output or "json".
	Format string `yaml:"format" json:"format"`
	// File, when set, sends logs to this file instead of stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// DefaultLoggingConfig logs at info level to stderr in console format.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  zerolog.InfoLevel.String(),
		Format: logging.FormatConsole,
	}
}

// Validate checks the level and format.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(lc.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
	}
	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, lc.Format)
	}
}

// ToLoggingConfig converts LoggingConfig to logging.Config. If File is set,
// Output becomes "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ApplyEnv overrides Level and Format from HEADWAY_LOG_LEVEL and HEADWAY_LOG_FORMAT.
func (lc *LoggingConfig) ApplyEnv() {
	if level := os.Getenv(logging.EnvLogLevel); level != "" {
		lc.Level = level
	}
	if format := os.Getenv(logging.EnvLogFormat); format != "" {
		lc.Format = format
	}
}

// EnsureLogDir creates the directory of the configured log file, if any.
func (lc *LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(lc.File), 0o750)
}

// GetLoggingConfig returns a copy of the global configuration's Logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
