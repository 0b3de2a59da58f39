// Package sound plays the alert that accompanies a phase transition
package sound

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

// Off disables the alert sound.
const Off = "off"

const (
	sampleRate    = beep.SampleRate(44100)
	bufferSize    = 10
	resampleLevel = 4
	toneLength    = 180 * time.Millisecond
)

// chime frequencies in Hz, played in order
var chime = []float64{880, 1318.5}

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
}

var (
	speakerOnce sync.Once
	speakerErr  error
	playMu      sync.Mutex
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Second/bufferSize),
		)
	})

	return speakerErr
}

// Play blocks until the alert has finished. An empty sound plays the built-in
// chime; a file that cannot be decoded falls back to the chime as well.
func Play(sound string) error {
	if sound == Off {
		return nil
	}

	stream, closeStream, err := Stream(sound)
	if err != nil {
		return err
	}

	defer closeStream()

	if err := initSpeaker(); err != nil {
		return fmt.Errorf("initialising speaker: %w", err)
	}

	playMu.Lock()
	defer playMu.Unlock()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}

// Stream returns the streamer for sound at the speaker sample rate along
// with a function that releases it.
func Stream(sound string) (beep.Streamer, func(), error) {
	noop := func() {}

	if sound == "" {
		s, err := Chime()
		return s, noop, err
	}

	stream, format, err := decode(sound)
	if err != nil {
		slog.Warn(
			"unable to load alert sound, using chime",
			slog.String("sound", sound),
			slog.Any("error", err),
		)

		s, err := Chime()

		return s, noop, err
	}

	closeStream := func() {
		_ = stream.Close()
	}

	if format.SampleRate == sampleRate {
		return stream, closeStream, nil
	}

	resampled := beep.Resample(resampleLevel, format.SampleRate, sampleRate, stream)

	return resampled, closeStream, nil
}

// Chime generates the built-in two note alert.
func Chime() (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(chime))

	for _, freq := range chime {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, err
		}

		notes = append(notes, beep.Take(sampleRate.N(toneLength), tone))
	}

	return beep.Seq(notes...), nil
}

func decode(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(sound))

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(sound)
	}

	f, err := os.Open(sound)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	default:
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}

	return stream, format, nil
}
