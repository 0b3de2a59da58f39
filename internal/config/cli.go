package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound         string
	SessionCmd    string
	Icon          string
	LogLevel      string
	Work          uint
	Break         uint
	DisableNotify bool
	Tray          bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.Uint("work"),
			Break:         ctx.Uint("break"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			Icon:          ctx.String("icon"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			Tray:          ctx.Bool("tray"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Zero values leave the
// existing settings untouched.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Work > 0 {
		c.Work.Duration = time.Duration(opts.Work) * time.Minute
	}

	if opts.Break > 0 {
		c.Break.Duration = time.Duration(opts.Break) * time.Minute
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Sound != "" {
		c.Notifications.Sound = opts.Sound
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Tray {
		c.Display.Tray = true
	}

	if opts.Icon != "" {
		c.Display.Icon = opts.Icon
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.NoColor {
		c.System.NoColor = true
	}
}
