// Package config loads, validates and saves the headway YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Environment variables that locate the configuration.
const (
	EnvHome   = "HEADWAY_HOME"
	EnvConfig = "HEADWAY_CONFIG"
)

// SchemaVersion is the configuration schema version written by Save.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build can read.
const supportedSchema = "^1"

// Configuration errors.
var (
	ErrInvalidVersion     = errors.New("config version is not valid semver")
	ErrUnsupportedVersion = errors.New("config version is not supported")
)

// Config is the top-level headway configuration.
type Config struct {
	// Version is the schema version of the file (semver).
	Version string `yaml:"version" json:"version"`
	// Calibration selects the speed-to-distance constants.
	Calibration CalibrationConfig `yaml:"calibration" json:"calibration"`
	// Output controls units, precision and format of printed results.
	Output OutputConfig `yaml:"output" json:"output"`
	// Logging controls the zerolog logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	configPath string
}

// New returns a Config holding the built-in defaults, bound to the default path.
func New() *Config {
	return &Config{
		Version:     SchemaVersion,
		Calibration: DefaultCalibrationConfig(),
		Output:      DefaultOutputConfig(),
		Logging:     DefaultLoggingConfig(),
		configPath:  DefaultConfigPath(),
	}
}

// HomeDir returns the headway home directory: $HEADWAY_HOME or ~/.headway.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".headway"
	}
	return filepath.Join(home, ".headway")
}

// DefaultConfigPath returns $HEADWAY_CONFIG or $HEADWAY_HOME/config.yaml.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	return filepath.Join(HomeDir(), "config.yaml")
}

// Load reads the configuration at path on top of the defaults. An empty path
// means DefaultConfigPath. A missing file is not an error: the defaults are
// returned, still bound to path so Save can create it.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", cfg.configPath, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, err)
	}

	if err = cfg.checkVersion(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigPath returns the file the configuration is bound to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath rebinds the configuration to another file.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section. Calibration problems are reported with
// advisor.ErrInvalidConfiguration in the chain.
func (c *Config) Validate() error {
	if err := c.checkVersion(); err != nil {
		return err
	}
	if _, err := c.Calibration.Build(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// checkVersion rejects files written for a different major schema version.
// An empty version is treated as the current schema.
func (c *Config) checkVersion() error {
	if c.Version == "" {
		return nil
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, c.Version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}

//nolint:gochecknoglobals // Process-wide configuration, set once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// GetGlobalConfig returns the process-wide configuration, loading it from
// the default path on first use. A file that fails to load yields defaults.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		loaded, err := Load("")
		if err != nil {
			loaded = New()
		}
		globalConfig = loaded
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfigForTest clears the process-wide configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
