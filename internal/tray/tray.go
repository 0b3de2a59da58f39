// Package tray shows a system tray icon while the timer runs. The tray has
// its own event loop; menu clicks are handed to the timer's owner as
// messages and never touch timer state directly.
package tray

import (
	"context"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/session"
)

// Intent is a request made from the tray menu.
type Intent int

const (
	Restore Intent = iota
	Quit
)

func (i Intent) String() string {
	if i == Quit {
		return "quit"
	}

	return "restore"
}

// IntentMsg carries an Intent to the bubbletea program.
type IntentMsg struct {
	Intent Intent
}

// Poster posts messages to the goroutine that owns the timer. *tea.Program
// satisfies it.
type Poster interface {
	Send(msg tea.Msg)
}

// menuItem is the part of *systray.MenuItem the tray uses.
type menuItem struct {
	clicked <-chan struct{}
}

// backend abstracts the systray package.
type backend struct {
	run        func(onReady, onExit func())
	quit       func()
	setIcon    func([]byte)
	setTitle   func(string)
	setTooltip func(string)
	addItem    func(title, tooltip string) menuItem
	separator  func()
}

var systrayBackend = backend{
	run:        systray.Run,
	quit:       systray.Quit,
	setIcon:    systray.SetIcon,
	setTitle:   systray.SetTitle,
	setTooltip: systray.SetTooltip,
	addItem: func(title, tooltip string) menuItem {
		return menuItem{clicked: systray.AddMenuItem(title, tooltip).ClickedCh}
	},
	separator: systray.AddSeparator,
}

// Tray is a system tray icon with Restore and Quit entries. It implements
// session.Observer to keep its tooltip current.
type Tray struct {
	cancel context.CancelFunc
	b      backend
	icon   []byte
	once   sync.Once
	ready  atomic.Bool
}

// New creates a tray using the icon at iconPath, or a generated icon if the
// path is empty or unreadable.
func New(iconPath string) *Tray {
	return &Tray{
		b:    systrayBackend,
		icon: LoadIcon(iconPath),
	}
}

// Start runs the tray loop on its own goroutine. Intents are posted to p
// until ctx is cancelled or Stop is called.
func (t *Tray) Start(ctx context.Context, p Poster) {
	ctx, t.cancel = context.WithCancel(ctx)

	go t.b.run(func() {
		t.onReady(ctx, p)
	}, func() {
		t.ready.Store(false)
	})
}

func (t *Tray) onReady(ctx context.Context, p Poster) {
	t.b.setIcon(t.icon)
	t.b.setTitle("pomo")
	t.b.setTooltip(session.Work.Title())

	restore := t.b.addItem("Restore", "Show the timer")

	t.b.separator()

	quit := t.b.addItem("Quit", "Quit pomo")

	t.ready.Store(true)

	go Forward(ctx, p, restore.clicked, quit.clicked)
}

// Stop removes the tray icon.
func (t *Tray) Stop() {
	t.once.Do(func() {
		if t.cancel != nil {
			t.cancel()
		}

		t.b.quit()
	})
}

// Forward translates menu clicks into intents posted to p. It returns after
// posting Quit or when ctx is done.
func Forward(
	ctx context.Context,
	p Poster,
	restore, quit <-chan struct{},
) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-restore:
			p.Send(IntentMsg{Intent: Restore})
		case <-quit:
			p.Send(IntentMsg{Intent: Quit})
			return
		}
	}
}

func (t *Tray) OnTick(display string, _ session.RGB) {
	if !t.ready.Load() {
		return
	}

	t.b.setTooltip("pomo " + display)
}

func (t *Tray) OnTransition(next session.Phase) {
	if !t.ready.Load() {
		return
	}

	t.b.setTooltip(next.AlertMessage())
}
