// Package report prints user-facing messages to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
