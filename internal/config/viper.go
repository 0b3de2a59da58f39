package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyBreakDuration        = "break.duration"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDisplayTray          = "display.tray"
	keyDisplayIcon          = "display.icon"
	keyDarkTheme            = "display.dark_theme"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "log.level"
)

const envPrefix = "pomo"

// WithViperConfig returns an Option that loads configuration from Viper. A
// file holding the defaults is written if none exists at configPath.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and environment overrides.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyBreakDuration, "5m")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, "")
	v.SetDefault(keyDisplayTray, false)
	v.SetDefault(keyDisplayIcon, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")

	// e.g. POMO_WORK_DURATION=50m
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
