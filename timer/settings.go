package timer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// settingsForm is the dialog for changing phase lengths. Range checks are
// left to SessionTimer.ApplySettings so that its error is what the user
// sees.
type settingsForm struct {
	form *huh.Form
	err  error
	work string
	brk  string
}

func newSettingsForm(work, brk string, err error) *settingsForm {
	s := &settingsForm{
		work: work,
		brk:  brk,
		err:  err,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work length (minutes)").
				Description("1 to 180").
				CharLimit(3).
				Validate(validateMinutes).
				Value(&s.work),
			huh.NewInput().
				Title("Break length (minutes)").
				Description("1 to 60").
				CharLimit(3).
				Validate(validateMinutes).
				Value(&s.brk),
		),
	).WithShowHelp(true)

	return s
}

func validateMinutes(s string) error {
	_, err := parseMinutes(s)
	return err
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNotANumber.Fmt(s)
	}

	return n, nil
}

// values returns the entered work and break lengths in minutes.
func (s *settingsForm) values() (work, brk int, err error) {
	work, err = parseMinutes(s.work)
	if err != nil {
		return 0, 0, err
	}

	brk, err = parseMinutes(s.brk)
	if err != nil {
		return 0, 0, err
	}

	return work, brk, nil
}

// openSettings shows the dialog prefilled with the current lengths.
func (t *Timer) openSettings() tea.Cmd {
	t.settings = newSettingsForm(
		strconv.Itoa(t.core.WorkDuration()/60),
		strconv.Itoa(t.core.BreakDuration()/60),
		nil,
	)

	return t.settings.form.Init()
}

// submitSettings applies the dialog values. On failure the dialog is shown
// again with the same values and the error.
func (t *Timer) submitSettings() tea.Cmd {
	s := t.settings

	work, brk, err := s.values()
	if err == nil {
		err = t.applySettings(work, brk)
	}

	if err != nil {
		t.settings = newSettingsForm(s.work, s.brk, err)
		return t.settings.form.Init()
	}

	t.settings = nil

	return nil
}

func (t *Timer) closeSettings() {
	t.settings = nil
	t.setStatus("settings unchanged", false)
}

// updateSettings routes input to the open dialog.
func (t *Timer) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, defaultKeymap.esc) {
		t.closeSettings()
		return t, nil
	}

	model, cmd := t.settings.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		t.settings.form = f
	}

	switch t.settings.form.State {
	case huh.StateCompleted:
		return t, t.submitSettings()
	case huh.StateAborted:
		t.closeSettings()
		return t, nil
	case huh.StateNormal:
	}

	return t, cmd
}
