package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(configPath string) *config.Config {
	return &config.Config{
		Work: config.SessionConfig{
			Duration: 25 * time.Minute,
		},
		Break: config.SessionConfig{
			Duration: 5 * time.Minute,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}
}

const modifiedConfig = `work:
  duration: 50m
break:
  duration: 10m
notifications:
  enabled: false
  sound: ~/sounds/gong.wav
display:
  tray: true
  dark_theme: false
settings:
  cmd: notify-send "done"
log:
  level: debug
`

func cliContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Uint("work", 0, "")
	set.Uint("break", 0, "")
	set.String("sound", "", "")
	set.String("session-cmd", "", "")
	set.String("icon", "", "")
	set.String("log-level", "", "")
	set.Bool("disable-notification", false, "")
	set.Bool("tray", false, "")
	set.Bool("no-color", false, "")

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithPaths(configPath, ""),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)
	assert.FileExists(t, configPath)

	// the written defaults load back unchanged
	again, err := config.New(
		config.WithPaths(configPath, ""),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(modifiedConfig), 0o600)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithPaths(configPath, ""),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := &config.Config{
		Work:  config.SessionConfig{Duration: 50 * time.Minute},
		Break: config.SessionConfig{Duration: 10 * time.Minute},
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   "~/sounds/gong.wav",
		},
		Display: config.DisplayConfig{
			Tray:      true,
			DarkTheme: false,
		},
		Settings: config.SettingsConfig{
			Cmd: `notify-send "done"`,
		},
		Log: config.LogConfig{Level: "debug"},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	assert.Equal(t, want, cfg)
	assert.Equal(t, 3000, cfg.WorkSeconds())
	assert.Equal(t, 600, cfg.BreakSeconds())
}

func TestCLIOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	ctx := cliContext(t,
		"--work", "45",
		"--break", "15",
		"--disable-notification",
		"--sound", "off",
		"--session-cmd", "echo hi",
		"--tray",
		"--log-level", "warn",
	)

	cfg, err := config.New(
		config.WithPaths(configPath, ""),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Work.Duration)
	assert.Equal(t, 15*time.Minute, cfg.Break.Duration)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, config.SoundOff, cfg.Notifications.Sound)
	assert.Equal(t, "echo hi", cfg.Settings.Cmd)
	assert.True(t, cfg.Display.Tray)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestCLIWithoutFlagsKeepsFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithPaths(configPath, ""),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(cliContext(t)),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)
}

func TestValidateRejectsDurations(t *testing.T) {
	cases := []struct {
		name       string
		work, brk  time.Duration
		shouldFail bool
	}{
		{"defaults", 25 * time.Minute, 5 * time.Minute, false},
		{"maximums", 180 * time.Minute, 60 * time.Minute, false},
		{"work too short", 30 * time.Second, 5 * time.Minute, true},
		{"work too long", 181 * time.Minute, 5 * time.Minute, true},
		{"break too long", 25 * time.Minute, 61 * time.Minute, true},
		{"break missing", 25 * time.Minute, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				Work:  config.SessionConfig{Duration: tc.work},
				Break: config.SessionConfig{Duration: tc.brk},
			}

			err := cfg.Validate()
			if !tc.shouldFail {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, session.ErrInvalidDuration)
		})
	}
}

func TestValidateSoundAndLogLevel(t *testing.T) {
	cfg := defaultConfig("config.yml")

	cfg.Notifications.Sound = "chime.aac"
	assert.Error(t, cfg.Validate())

	cfg.Notifications.Sound = "chime.OGG"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestInvalidFileDurationFailsNew(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("break:\n  duration: 0s\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))

	assert.ErrorIs(t, err, session.ErrInvalidDuration)
}
