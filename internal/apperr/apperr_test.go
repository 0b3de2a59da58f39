package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "%s duration must be between %v and %v",
}

func TestFmtMatchesTemplate(t *testing.T) {
	err := errTemplate.Fmt("work", 1, 180)

	assert.Equal(t, "work duration must be between 1 and 180", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errTemplate.Fmt("break", 1, 60).Wrap(io.EOF)

	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "break duration must be between 1 and 60: EOF", err.Error())
}

func TestDistinctTemplatesDoNotMatch(t *testing.T) {
	other := &apperr.Error{Message: "something else"}

	assert.False(t, errors.Is(errTemplate.Fmt("a", 1, 2), other))
}
