package timer

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errNotANumber = &apperr.Error{
		Message: "%q is not a whole number of minutes",
	}

	errCopyLaps = &apperr.Error{
		Message: "unable to copy laps",
	}
)
