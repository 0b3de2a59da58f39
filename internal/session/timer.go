package session

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Accepted phase lengths in seconds.
const (
	MinWorkDuration  = 60
	MaxWorkDuration  = 180 * 60
	MinBreakDuration = 60
	MaxBreakDuration = 60 * 60
)

// Result reports the outcome of a Tick.
type Result struct {
	// Phase is the phase in force after the tick.
	Phase Phase
	// Transitioned is true when the tick ended the previous phase.
	Transitioned bool
}

// SessionTimer is the countdown state machine. It is advanced by calling Tick
// once per second while it is running. A SessionTimer is not safe for
// concurrent use; it belongs to the goroutine that drives it.
type SessionTimer struct {
	observers     []Observer
	laps          []string
	phase         Phase
	workDuration  int
	breakDuration int
	remaining     int
	running       bool
}

// New returns an idle timer at the start of a default length work session.
func New() *SessionTimer {
	return &SessionTimer{
		phase:         Work,
		workDuration:  DefaultWorkDuration,
		breakDuration: DefaultBreakDuration,
		remaining:     DefaultWorkDuration,
	}
}

// Subscribe registers o to receive tick and transition events.
func (s *SessionTimer) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Start begins counting down. It reports false and does nothing if the timer
// is already running or has no time left.
func (s *SessionTimer) Start() bool {
	if s.running || s.remaining <= 0 {
		return false
	}

	s.running = true

	return true
}

// Pause stops counting down without touching the remaining time. It reports
// false if the timer was not running.
func (s *SessionTimer) Pause() bool {
	if !s.running {
		return false
	}

	s.running = false

	return true
}

// Tick advances the countdown by one second. The tick that brings the counter
// to zero also performs the transition into the next phase: the timer stops,
// laps are cleared and the counter is refilled from the new phase. Ticks
// delivered while the timer is idle are ignored.
func (s *SessionTimer) Tick() Result {
	if !s.running {
		return Result{Phase: s.phase}
	}

	if s.remaining > 0 {
		s.remaining--
		s.emitTick()
	}

	if s.remaining > 0 {
		return Result{Phase: s.phase}
	}

	return s.transition()
}

func (s *SessionTimer) transition() Result {
	s.running = false
	s.laps = nil
	s.phase = s.phase.Next()
	s.remaining = s.DurationOf(s.phase)

	for _, o := range s.observers {
		o.OnTransition(s.phase)
	}

	return Result{Phase: s.phase, Transitioned: true}
}

func (s *SessionTimer) emitTick() {
	if len(s.observers) == 0 {
		return
	}

	display, color := s.Display(), s.Color()

	for _, o := range s.observers {
		o.OnTick(display, color)
	}
}

// Reset stops the timer and returns it to the start of a work session with
// no laps.
func (s *SessionTimer) Reset() {
	s.running = false
	s.phase = Work
	s.remaining = s.workDuration
	s.laps = nil
}

// SwitchPhase stops the timer and jumps to the start of the other phase.
// Unlike an automatic transition, recorded laps are kept.
func (s *SessionTimer) SwitchPhase() {
	s.running = false
	s.phase = s.phase.Next()
	s.remaining = s.DurationOf(s.phase)
}

// ApplySettings replaces both phase lengths (in seconds) and resets the
// timer. Nothing changes if either value is out of range.
func (s *SessionTimer) ApplySettings(workSeconds, breakSeconds int) error {
	if err := ValidateDurations(workSeconds, breakSeconds); err != nil {
		return err
	}

	s.workDuration = workSeconds
	s.breakDuration = breakSeconds
	s.Reset()

	return nil
}

// ValidateDurations checks work and break lengths in seconds against the
// accepted ranges.
func ValidateDurations(workSeconds, breakSeconds int) error {
	if workSeconds < MinWorkDuration || workSeconds > MaxWorkDuration {
		return ErrInvalidDuration.Fmt(
			Work,
			MinWorkDuration/60,
			MaxWorkDuration/60,
			workSeconds,
		)
	}

	if breakSeconds < MinBreakDuration || breakSeconds > MaxBreakDuration {
		return ErrInvalidDuration.Fmt(
			Break,
			MinBreakDuration/60,
			MaxBreakDuration/60,
			breakSeconds,
		)
	}

	return nil
}

// RecordLap stores the current remaining time.
func (s *SessionTimer) RecordLap() {
	s.laps = append(s.laps, s.Display())
}

// Phase returns the current phase.
func (s *SessionTimer) Phase() Phase {
	return s.phase
}

// Remaining returns the seconds left in the current phase.
func (s *SessionTimer) Remaining() int {
	return s.remaining
}

// Running reports whether the timer is counting down.
func (s *SessionTimer) Running() bool {
	return s.running
}

func (s *SessionTimer) WorkDuration() int {
	return s.workDuration
}

func (s *SessionTimer) BreakDuration() int {
	return s.breakDuration
}

// DurationOf returns the configured length of p in seconds.
func (s *SessionTimer) DurationOf(p Phase) int {
	if p == Work {
		return s.workDuration
	}

	return s.breakDuration
}

// Laps returns the recorded laps in the order they were taken.
func (s *SessionTimer) Laps() []string {
	return slices.Clone(s.laps)
}

// LapsText returns the recorded laps one per line.
func (s *SessionTimer) LapsText() string {
	return strings.Join(s.laps, "\n")
}

// Ratio is the fraction of the current phase still to run: 1 at the start
// and 0 when it runs out.
func (s *SessionTimer) Ratio() float64 {
	total := s.DurationOf(s.phase)
	if total <= 0 {
		return 0
	}

	return float64(s.remaining) / float64(total)
}

// Display returns the remaining time as MM:SS.
func (s *SessionTimer) Display() string {
	return timeutil.FormatClock(s.remaining)
}

// Color returns the progress colour for the current state.
func (s *SessionTimer) Color() RGB {
	return Color(s.phase, s.Ratio())
}
