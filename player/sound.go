package player

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/yogi/internal/config"
)

const (
	bellSampleRate = beep.SampleRate(44100)
	bellFrequency  = 880
	bellLength     = 350 * time.Millisecond
)

// Bell is rung when the active card changes.
type Bell interface {
	Ring()
}

// silentBell is used when the bell is disabled or unavailable.
type silentBell struct{}

func (silentBell) Ring() {}

// speakerBell plays a buffered sound through the system speaker.
type speakerBell struct {
	buffer *beep.Buffer
	mu     sync.Mutex
}

func (b *speakerBell) Ring() {
	b.mu.Lock()
	defer b.mu.Unlock()

	speaker.Clear()
	speaker.Play(b.buffer.Streamer(0, b.buffer.Len()))
}

// NewBell prepares the configured bell sound. Failures are logged and
// produce a silent bell so playback is never blocked by audio problems.
func NewBell(sound string) Bell {
	if sound == "" || sound == config.BellOff {
		return silentBell{}
	}

	buffer, err := loadBell(sound)
	if err != nil {
		slog.Error("bell disabled",
			slog.String("sound", sound),
			slog.Any("error", err),
		)

		return silentBell{}
	}

	bufferSize := 10

	err = speaker.Init(
		buffer.Format().SampleRate,
		buffer.Format().SampleRate.N(time.Second/time.Duration(bufferSize)),
	)
	if err != nil {
		slog.Error("bell disabled: speaker unavailable", slog.Any("error", err))

		return silentBell{}
	}

	return &speakerBell{buffer: buffer}
}

// loadBell decodes sound into memory. "bell" selects the built-in tone;
// anything else is a path to an audio file.
func loadBell(sound string) (*beep.Buffer, error) {
	if sound == "bell" {
		return toneBuffer()
	}

	f, err := os.Open(sound)
	if err != nil {
		return nil, errOpenSound.Fmt(sound).Wrap(err)
	}

	stream, format, err := decode(f, filepath.Ext(sound))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	defer stream.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(stream)

	return buffer, nil
}

func decode(
	f io.ReadCloser,
	ext string,
) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}

	return nil, beep.Format{}, errInvalidSoundFormat
}

// toneBuffer renders a short sine tone at half volume.
func toneBuffer() (*beep.Buffer, error) {
	tone, err := generators.SineTone(bellSampleRate, bellFrequency)
	if err != nil {
		return nil, err
	}

	format := beep.Format{
		SampleRate:  bellSampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	n := bellSampleRate.N(bellLength)

	buffer := beep.NewBuffer(format)
	buffer.Append(&effects.Volume{
		Streamer: beep.Take(n, tone),
		Base:     2,
		Volume:   -1,
	})

	return buffer, nil
}
