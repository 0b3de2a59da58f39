package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		pterm.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	keys := fmt.Sprintf(
		"%s\n%s\n\n",
		pterm.Yellow("KEYS"),
		keyHelp(),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/pomo\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + author + version + keys + options + env + website
}

func keyHelp() string {
	return `		space, p	start or pause
		r		reset to the start of a work session
		s		switch between work and break
		l		record a lap
		c		copy laps to the clipboard
		e		change session lengths
		m		minimize
		enter		dismiss the end of session alert
		q, ctrl+c	quit`
}

func envHelp() string {
	return `
POMO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

POMO_ENV: use a separate config and log file, e.g. config_dev.yml when set to "dev".

POMO_WORK_DURATION, POMO_BREAK_DURATION, ...: override any config file key.

POMO_UPDATE_NOTIFIER: set to any value to enable update notifications when using the -v or --version flag.`
}
