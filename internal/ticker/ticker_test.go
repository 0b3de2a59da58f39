package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = time.Millisecond

func fire(t *testing.T, tk *Ticker, start bool) TickMsg {
	t.Helper()

	next := tk.Next
	if start {
		next = tk.Start
	}

	cmd := next()

	require.NotNil(t, cmd)

	msg, ok := cmd().(TickMsg)
	require.True(t, ok)

	return msg
}

func TestStartProducesAcceptedTick(t *testing.T) {
	tk := New(interval)

	msg := fire(t, &tk, true)

	assert.True(t, tk.Running())
	assert.Equal(t, tk.ID(), msg.ID)
	assert.True(t, tk.Accept(msg))
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	tk := New(interval)
	tk.Start()

	assert.Nil(t, tk.Start())
}

func TestStopDiscardsInFlightTick(t *testing.T) {
	tk := New(interval)

	msg := fire(t, &tk, true)

	tk.Stop()

	assert.False(t, tk.Accept(msg))
	assert.Nil(t, tk.Next())

	restarted := fire(t, &tk, true)

	assert.False(t, tk.Accept(msg), "tick from the previous run")
	assert.True(t, tk.Accept(restarted))
}

func TestNextKeepsGeneration(t *testing.T) {
	tk := New(interval)

	first := fire(t, &tk, true)
	second := fire(t, &tk, false)

	assert.True(t, tk.Accept(first))
	assert.True(t, tk.Accept(second))
}

func TestTickersDoNotShareMessages(t *testing.T) {
	a := New(interval)
	b := New(interval)

	msg := fire(t, &a, true)
	b.Start()

	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, b.Accept(msg))
}
