// Package app wires the pomo command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pomo is a Pomodoro session timer for the terminal. It alternates work
		and break sessions, alerts you when each one ends, and records laps
		along the way.`,
		UsageText:            "[OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			workFlag,
			breakFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			trayFlag,
			iconFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pomoApp
}
