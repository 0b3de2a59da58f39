// Package session implements the Pomodoro session timer: the countdown state
// machine that alternates work and break phases
package session

// Phase identifies the kind of session being timed.
type Phase int

const (
	Work Phase = iota
	Break
)

// Default phase lengths in seconds.
const (
	DefaultWorkDuration  = 25 * 60
	DefaultBreakDuration = 5 * 60
)

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Work {
		return Break
	}

	return Work
}

// Title is the heading shown while p is in progress.
func (p Phase) Title() string {
	if p == Work {
		return "Work Time"
	}

	return "Break Time"
}

// AlertMessage is the text shown when a session transitions into p.
func (p Phase) AlertMessage() string {
	if p == Break {
		return "Time to take a break!"
	}

	return "Time to work!"
}

func (p Phase) String() string {
	if p == Work {
		return "work"
	}

	return "break"
}
