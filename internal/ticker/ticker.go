// Package ticker provides a cancellable repeating tick source for bubbletea
// programs
package ticker

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered once per interval while a Ticker is running.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Ticker re-arms a one-shot tea.Tick after every accepted tick. Ticks are
// tagged with a generation so that Stop invalidates any tick already in
// flight: once Stop returns, no tick is accepted until the next Start.
type Ticker struct {
	interval time.Duration
	id       int
	tag      int
	running  bool
}

// New returns a stopped ticker firing every interval.
func New(interval time.Duration) Ticker {
	return Ticker{
		interval: interval,
		id:       nextID(),
	}
}

// ID identifies the ticker in its messages.
func (t *Ticker) ID() int {
	return t.id
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool {
	return t.running
}

// Start arms the ticker. It returns nil if the ticker is already running.
func (t *Ticker) Start() tea.Cmd {
	if t.running {
		return nil
	}

	t.running = true
	t.tag++

	return t.tick()
}

// Stop disarms the ticker and discards any pending tick.
func (t *Ticker) Stop() {
	t.running = false
	t.tag++
}

// Accept reports whether msg belongs to the current run of this ticker.
func (t *Ticker) Accept(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.tag == t.tag
}

// Next schedules the tick after an accepted one.
func (t *Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}

	return t.tick()
}

func (t *Ticker) tick() tea.Cmd {
	id, tag := t.id, t.tag

	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, Time: now}
	})
}
