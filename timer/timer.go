// Package timer is the terminal front end of the Pomodoro session timer. It
// owns the session state, drives it with a one second ticker, and presents
// alerts, laps and settings.
package timer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/ticker"
)

// Options customises a Timer.
type Options struct {
	// Clipboard receives copied laps. Defaults to the system clipboard.
	Clipboard func(text string) error
	// TickInterval defaults to one second.
	TickInterval time.Duration
	DarkTheme    bool
}

// Timer is the bubbletea model for the session timer. It is the only owner
// of the underlying SessionTimer: every mutation happens inside Update.
type Timer struct {
	core      *session.SessionTimer
	copy      func(string) error
	settings  *settingsForm
	completed map[session.Phase]int
	style     styles
	alert     string
	status    string
	help      help.Model
	laps      viewport.Model
	progress  progress.Model
	clock     ticker.Ticker
	statusErr bool
	minimized bool
	quitting  bool
}

// New creates the model around core.
func New(core *session.SessionTimer, opts Options) *Timer {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}

	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	t := &Timer{
		core:      core,
		copy:      opts.Clipboard,
		clock:     ticker.New(opts.TickInterval),
		completed: make(map[session.Phase]int),
		style:     newStyles(opts.DarkTheme),
		help:      help.New(),
		laps:      viewport.New(maxWidth-padding*2, lapLines),
		progress: progress.New(
			progress.WithSolidFill(core.Color().Hex()),
			progress.WithoutPercentage(),
		),
	}

	t.refreshLaps()

	return t
}

func (t *Timer) Init() tea.Cmd {
	return nil
}

// Completed returns the number of sessions of phase p that ran to the end.
func (t *Timer) Completed(p session.Phase) int {
	return t.completed[p]
}

// start resumes the countdown and arms the ticker.
func (t *Timer) start() tea.Cmd {
	if !t.core.Start() {
		return nil
	}

	slog.Debug(
		"timer started",
		slog.String("phase", t.core.Phase().String()),
		slog.Int("remaining", t.core.Remaining()),
	)

	return t.clock.Start()
}

// pause stops the countdown. The ticker is disarmed before returning so no
// further tick is counted.
func (t *Timer) pause() {
	t.core.Pause()
	t.clock.Stop()

	slog.Debug("timer paused", slog.Int("remaining", t.core.Remaining()))
}

func (t *Timer) togglePlay() tea.Cmd {
	if t.core.Running() {
		t.pause()
		return nil
	}

	return t.start()
}

func (t *Timer) reset() {
	t.clock.Stop()
	t.core.Reset()
	t.refreshLaps()
	t.setStatus("timer reset", false)
}

func (t *Timer) switchPhase() {
	t.clock.Stop()
	t.core.SwitchPhase()
	t.setStatus("switched to "+t.core.Phase().Title(), false)
}

func (t *Timer) recordLap() {
	t.core.RecordLap()
	t.refreshLaps()
	t.laps.GotoBottom()
}

func (t *Timer) copyLaps() {
	text := t.core.LapsText()
	if text == "" {
		t.setStatus("no laps to copy", false)
		return
	}

	if err := t.copy(text); err != nil {
		err = errCopyLaps.Wrap(err)

		slog.Warn("copy laps failed", slog.Any("error", err))
		t.setStatus(err.Error(), true)

		return
	}

	t.setStatus("laps copied to clipboard", false)
}

// applySettings updates both phase lengths given in minutes.
func (t *Timer) applySettings(workMins, breakMins int) error {
	err := t.core.ApplySettings(workMins*60, breakMins*60)
	if err != nil {
		return err
	}

	t.clock.Stop()
	t.refreshLaps()
	t.setStatus("settings applied", false)

	slog.Info(
		"settings applied",
		slog.Int("work", t.core.WorkDuration()),
		slog.Int("break", t.core.BreakDuration()),
	)

	return nil
}

func (t *Timer) refreshLaps() {
	t.laps.SetContent(strings.Join(t.core.Laps(), "\n"))
}

func (t *Timer) setStatus(msg string, isErr bool) {
	t.status = msg
	t.statusErr = isErr
}
