package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/logging"
	"github.com/ayoisaiah/pomo/internal/ticker"
	"github.com/ayoisaiah/pomo/internal/tray"
)

// handleTick counts one second. The tick that ends a phase stops the ticker
// and raises the alert; the countdown resumes once it is acknowledged.
func (t *Timer) handleTick(msg ticker.TickMsg) (tea.Model, tea.Cmd) {
	if !t.clock.Accept(msg) {
		return t, nil
	}

	ended := t.core.Phase()

	res := t.core.Tick()
	if !res.Transitioned {
		return t, t.clock.Next()
	}

	t.clock.Stop()
	t.completed[ended]++
	t.alert = res.Phase.AlertMessage()
	t.minimized = false
	t.refreshLaps()

	slog.Info(
		"session completed",
		slog.String("ended", ended.String()),
		slog.String("next", res.Phase.String()),
	)

	return t, nil
}

// handleIntent acts on a request posted from the tray goroutine.
func (t *Timer) handleIntent(msg tray.IntentMsg) (tea.Model, tea.Cmd) {
	slog.Debug("tray intent", slog.String("intent", msg.Intent.String()))

	switch msg.Intent {
	case tray.Restore:
		t.minimized = false
	case tray.Quit:
		return t.quit()
	}

	return t, nil
}

// handleAlertKey accepts only acknowledgement or quit while the alert is up.
func (t *Timer) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.enter):
		t.alert = ""

		return t, t.start()
	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()
	}

	return t, nil
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.minimized {
		switch {
		case key.Matches(msg, defaultKeymap.minimize):
			t.minimized = false
		case key.Matches(msg, defaultKeymap.quit):
			return t.quit()
		}

		return t, nil
	}

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		cmd = t.togglePlay()

	case key.Matches(msg, defaultKeymap.reset):
		t.reset()

	case key.Matches(msg, defaultKeymap.switchSess):
		t.switchPhase()

	case key.Matches(msg, defaultKeymap.lap):
		t.recordLap()

	case key.Matches(msg, defaultKeymap.copyLaps):
		t.copyLaps()

	case key.Matches(msg, defaultKeymap.settings):
		cmd = t.openSettings()

	case key.Matches(msg, defaultKeymap.minimize):
		t.minimized = true

	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()

	case key.Matches(msg, defaultKeymap.scrollUp, defaultKeymap.scrollDown):
		t.laps, cmd = t.laps.Update(msg)
	}

	return t, cmd
}

func (t *Timer) quit() (tea.Model, tea.Cmd) {
	t.clock.Stop()
	t.core.Pause()
	t.quitting = true

	return t, tea.Quit
}

func (t *Timer) resize(msg tea.WindowSizeMsg) {
	width := min(msg.Width-padding*2-4, maxWidth)

	t.progress.Width = width
	t.laps.Width = width
	t.help.Width = width
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ticker.TickMsg:
		return t.handleTick(msg)

	case tray.IntentMsg:
		return t.handleIntent(msg)

	case tea.WindowSizeMsg:
		t.resize(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	if isKey && t.alert != "" {
		return t.handleAlertKey(keyMsg)
	}

	if t.settings != nil {
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			slog.Debug("settings form update", slog.String("msg", logging.Dump(msg)))
		}

		return t.updateSettings(msg)
	}

	if !isKey {
		return t, nil
	}

	return t.handleKeyPress(keyMsg)
}
