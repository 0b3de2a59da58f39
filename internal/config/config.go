package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Work          SessionConfig      `mapstructure:"work"`
		Break         SessionConfig      `mapstructure:"break"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// SessionConfig holds the settings of a single phase
	SessionConfig struct {
		Duration time.Duration `mapstructure:"duration"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Icon      string `mapstructure:"icon"`
		DarkTheme bool   `mapstructure:"dark_theme"`
		Tray      bool   `mapstructure:"tray"`
	}

	// SettingsConfig holds miscellaneous timer settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		LogPath    string
		NoColor    bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// SoundOff disables the alert sound.
const SoundOff = "off"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WorkSeconds returns the work duration in whole seconds.
func (c *Config) WorkSeconds() int {
	return int(c.Work.Duration / time.Second)
}

// BreakSeconds returns the break duration in whole seconds.
func (c *Config) BreakSeconds() int {
	return int(c.Break.Duration / time.Second)
}

// LogLevel parses the configured log level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// WithPaths records where the configuration and log files live.
func WithPaths(configPath, logPath string) Option {
	return func(c *Config) error {
		if configPath == "" {
			return fmt.Errorf("empty config path")
		}

		c.System.ConfigPath = configPath
		c.System.LogPath = logPath

		return nil
	}
}
