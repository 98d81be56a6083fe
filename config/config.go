// Package config loads and persists the dashboard configuration.
// Precedence: CLI flags > environment variables > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Board overrides hardware detection (e.g. "virtual", "hud-one").
	// Empty means detect.
	Board string `mapstructure:"board"`

	// Language is a BCP 47 tag for the UI language (e.g. "fr", "de").
	// Empty means use the system locale.
	Language string `mapstructure:"language"`

	// TranslationsDir is the directory searched for translation
	// catalogues, relative to the working directory unless absolute.
	TranslationsDir string `mapstructure:"translations_dir"`

	// CertBundle overrides the vendor CA bundle path. Empty means the
	// board's well-known path.
	CertBundle string `mapstructure:"cert_bundle"`

	// DeviceID identifies this unit to the telemetry endpoint. If not
	// set, it is derived from the primary network interface.
	DeviceID string `mapstructure:"device_id"`

	// TelemetryURL is the base URL startup reports are posted to.
	// Empty disables the upload.
	TelemetryURL string `mapstructure:"telemetry_url"`

	// WindowWidth and WindowHeight size the window on boards that are
	// not fullscreen-only. Zero means the board's panel geometry.
	WindowWidth  int `mapstructure:"window_width"`
	WindowHeight int `mapstructure:"window_height"`

	// Fullscreen forces fullscreen even on windowed boards.
	Fullscreen bool `mapstructure:"fullscreen"`

	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose"`
}

const (
	DefaultTranslationsDir = "translations"
	ConfigFileName         = "config"
)

func newViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("ROADHUD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("board", "")
	v.SetDefault("language", "")
	v.SetDefault("translations_dir", DefaultTranslationsDir)
	v.SetDefault("cert_bundle", "")
	v.SetDefault("device_id", "")
	v.SetDefault("telemetry_url", "")
	v.SetDefault("window_width", 0)
	v.SetDefault("window_height", 0)
	v.SetDefault("fullscreen", false)
	v.SetDefault("verbose", false)
	return v
}

// Load reads configuration from the config file and environment.
func Load() (*Config, error) {
	dir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return loadFrom(dir)
}

// loadFrom reads configuration rooted at the given directory. Split out
// from Load so tests can use a scratch directory.
func loadFrom(dir string) (*Config, error) {
	v := newViper(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	dir, err := getConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return c.saveTo(dir)
}

func (c *Config) saveTo(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(dir)
	v.Set("board", c.Board)
	v.Set("language", c.Language)
	v.Set("translations_dir", c.TranslationsDir)
	v.Set("cert_bundle", c.CertBundle)
	v.Set("device_id", c.DeviceID)
	v.Set("telemetry_url", c.TelemetryURL)
	v.Set("window_width", c.WindowWidth)
	v.Set("window_height", c.WindowHeight)
	v.Set("fullscreen", c.Fullscreen)
	v.Set("verbose", c.Verbose)

	path := filepath.Join(dir, ConfigFileName+".yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory, following the XDG
// Base Directory specification.
func getConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "roadhud"), nil
}

// Validate checks the configuration for values no stage can work with.
func (c *Config) Validate() error {
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return fmt.Errorf("window dimensions must not be negative")
	}
	if (c.WindowWidth == 0) != (c.WindowHeight == 0) {
		return fmt.Errorf("window width and height must be set together")
	}
	if c.TranslationsDir == "" {
		return fmt.Errorf("translations directory cannot be empty")
	}
	return nil
}
