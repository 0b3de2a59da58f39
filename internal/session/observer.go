package session

// Observer receives the events emitted by a SessionTimer. Observers are
// called synchronously on the goroutine that drives the timer and must not
// call back into it.
type Observer interface {
	// OnTick reports the remaining time as MM:SS and the progress colour after
	// every counted second.
	OnTick(display string, color RGB)
	// OnTransition reports that the timer switched to next on its own.
	OnTransition(next Phase)
}
