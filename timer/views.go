package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

func (t *Timer) alertView() string {
	var s strings.Builder

	s.WriteString(t.style.title.Render(t.alert))
	s.WriteString("\n\n")
	s.WriteString(t.style.hint.Render(
		fmt.Sprintf("%s starts at %s", t.core.Phase().Title(), t.core.Display()),
	))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.quit,
	}))

	return t.style.alert.Render(s.String())
}

func (t *Timer) stateLabel() string {
	if t.core.Running() {
		return "[Running]"
	}

	if t.core.Remaining() < t.core.DurationOf(t.core.Phase()) {
		return "[Paused]"
	}

	return "[Ready]"
}

// minimizedView is a single status line shown while the timer sits in the
// tray.
func (t *Timer) minimizedView() string {
	return fmt.Sprintf(
		"%s %s %s (m to restore)",
		t.core.Phase().Title(),
		t.core.Display(),
		t.stateLabel(),
	)
}

func (t *Timer) lapsView() string {
	laps := t.core.Laps()
	if len(laps) == 0 {
		return t.style.hint.Render("No laps recorded")
	}

	header := t.style.secondary.Render(fmt.Sprintf("Laps (%d)", len(laps)))

	return header + "\n" + t.laps.View()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.title.Render(t.core.Phase().Title()))
	s.WriteString(" " + t.style.hint.Render(t.stateLabel()))
	s.WriteString(" " + t.style.hint.Render(fmt.Sprintf(
		"(work %s, break %s)",
		timeutil.HumanMinutes(time.Duration(t.core.WorkDuration())*time.Second),
		timeutil.HumanMinutes(time.Duration(t.core.BreakDuration())*time.Second),
	)))

	s.WriteString("\n\n")
	s.WriteString(t.style.clock.Render(t.core.Display()))
	s.WriteString("\n\n")

	bar := t.progress
	bar.FullColor = t.core.Color().Hex()

	s.WriteString(bar.ViewAs(t.core.Ratio()))
	s.WriteString("\n\n")
	s.WriteString(t.lapsView())

	if t.status != "" {
		style := t.style.hint
		if t.statusErr {
			style = t.style.errText
		}

		s.WriteString("\n\n" + style.Render(t.status))
	}

	return s.String()
}

func (t *Timer) settingsView() string {
	var s strings.Builder

	if t.settings.err != nil {
		s.WriteString(t.style.errText.Render(t.settings.err.Error()))
		s.WriteString("\n\n")
	}

	s.WriteString(t.settings.form.View())

	return s.String()
}

func (t *Timer) helpView() string {
	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.switchSess,
		defaultKeymap.lap,
		defaultKeymap.copyLaps,
		defaultKeymap.settings,
		defaultKeymap.minimize,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	if t.alert != "" {
		return t.style.base.Render(t.alertView())
	}

	if t.minimized {
		return t.minimizedView()
	}

	view := t.timerView()

	if t.settings != nil {
		view += "\n\n" + t.settingsView()
	} else {
		view += "\n\n" + t.helpView()
	}

	return t.style.base.Render(view)
}
