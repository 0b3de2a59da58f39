package config

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/pomo/internal/session"
)

var validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := session.ValidateDurations(
		c.WorkSeconds(),
		c.BreakSeconds(),
	); err != nil {
		return err
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	if c.Log.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return errInvalidLogLevel.Fmt(c.Log.Level)
		}
	}

	return nil
}

// validateSound checks the format of a custom alert sound. Whether the file
// can actually be read is only known when it is played.
func (c *Config) validateSound() error {
	sound := c.Notifications.Sound
	if sound == "" || sound == SoundOff {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	return nil
}
