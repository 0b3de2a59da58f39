package sound

import (
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)

	var total int

	for {
		n, ok := s.Stream(buf)
		total += n

		if !ok {
			return total
		}
	}
}

func TestChimeLength(t *testing.T) {
	s, err := Chime()
	require.NoError(t, err)

	want := len(chime) * sampleRate.N(toneLength)

	assert.Equal(t, want, drain(s))
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	_, _, err := decode("alert.aac")

	assert.ErrorIs(t, err, errInvalidSoundFormat)
}

func TestStreamFallsBackToChime(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wav")

	s, closeStream, err := Stream(missing)
	require.NoError(t, err)

	defer closeStream()

	assert.Equal(t, len(chime)*sampleRate.N(toneLength), drain(s))
}

func TestPlayOffIsSilent(t *testing.T) {
	assert.NoError(t, Play(Off))
}
