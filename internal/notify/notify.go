// Package notify delivers the desktop side effects of a phase transition: a
// notification, an alert sound and an optional user command
package notify

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/sound"
)

// Title is the heading of every desktop notification.
const Title = "Pomodoro Timer"

var errParseCmd = &apperr.Error{
	Message: "unable to parse session command",
}

// Notifier implements session.Observer. Transition effects run on their own
// goroutine so the timer's owner is never blocked by them.
type Notifier struct {
	notify  func(title, message, icon string) error
	play    func(sound string) error
	run     func(name string, args ...string) error
	icon    string
	sound   string
	cmd     string
	enabled bool
	// async is false only in tests
	async bool
}

// New builds a Notifier from the notification and command settings.
func New(cfg *config.Config, iconPath string) *Notifier {
	return &Notifier{
		enabled: cfg.Notifications.Enabled,
		sound:   cfg.Notifications.Sound,
		cmd:     cfg.Settings.Cmd,
		icon:    iconPath,
		notify:  desktopNotify,
		play:    sound.Play,
		run:     runCmd,
		async:   true,
	}
}

func (n *Notifier) OnTick(string, session.RGB) {}

func (n *Notifier) OnTransition(next session.Phase) {
	if n.async {
		go n.deliver(next)
		return
	}

	n.deliver(next)
}

func (n *Notifier) deliver(next session.Phase) {
	if n.enabled {
		err := n.notify(Title, next.AlertMessage(), n.icon)
		if err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}

		if err := n.play(n.sound); err != nil {
			slog.Error("unable to play sound", slog.Any("error", err))
		}
	}

	if err := n.runSessionCmd(); err != nil {
		slog.Error(
			"session command failed",
			slog.String("cmd", n.cmd),
			slog.Any("error", err),
		)
	}
}

// runSessionCmd executes the user's command after each transition.
func (n *Notifier) runSessionCmd() error {
	if n.cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(n.cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return n.run(cmdSlice[0], cmdSlice[1:]...)
}

func desktopNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

func runCmd(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
