package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/session"
)

type calls struct {
	notified []string
	played   []string
	ran      [][]string
}

func newTestNotifier(c *calls, enabled bool, cmd string) *Notifier {
	return &Notifier{
		enabled: enabled,
		sound:   "bell.ogg",
		cmd:     cmd,
		icon:    "icon.png",
		notify: func(title, message, icon string) error {
			c.notified = append(c.notified, title+"|"+message+"|"+icon)
			return nil
		},
		play: func(sound string) error {
			c.played = append(c.played, sound)
			return errors.New("no audio device")
		},
		run: func(name string, args ...string) error {
			c.ran = append(c.ran, append([]string{name}, args...))
			return nil
		},
	}
}

func TestTransitionToBreak(t *testing.T) {
	var c calls

	n := newTestNotifier(&c, true, "")
	n.OnTransition(session.Break)

	assert.Equal(t, []string{"Pomodoro Timer|Time to take a break!|icon.png"}, c.notified)
	assert.Equal(t, []string{"bell.ogg"}, c.played)
	assert.Empty(t, c.ran)
}

func TestTransitionToWork(t *testing.T) {
	var c calls

	n := newTestNotifier(&c, true, "")
	n.OnTransition(session.Work)

	assert.Equal(t, []string{"Pomodoro Timer|Time to work!|icon.png"}, c.notified)
}

func TestDisabledStillRunsCommand(t *testing.T) {
	var c calls

	n := newTestNotifier(&c, false, `notify-send "Pomodoro" 'phase over'`)
	n.OnTransition(session.Break)

	assert.Empty(t, c.notified)
	assert.Empty(t, c.played)
	assert.Equal(t, [][]string{{"notify-send", "Pomodoro", "phase over"}}, c.ran)
}

func TestUnbalancedCommandIsNotRun(t *testing.T) {
	var c calls

	n := newTestNotifier(&c, false, `echo "unterminated`)

	err := n.runSessionCmd()

	assert.ErrorIs(t, err, errParseCmd)
	assert.Empty(t, c.ran)
}

func TestOnTickIsNoop(t *testing.T) {
	var c calls

	n := newTestNotifier(&c, true, "echo")
	n.OnTick("24:59", session.StartColor(session.Work))

	assert.Empty(t, c.notified)
	assert.Empty(t, c.ran)
}
