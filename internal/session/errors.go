package session

import "github.com/ayoisaiah/pomo/internal/apperr"

// ErrInvalidDuration is returned when a work or break length falls outside
// the accepted range.
var ErrInvalidDuration = &apperr.Error{
	Message: "%s duration must be between %d and %d minutes, got %d seconds",
}
