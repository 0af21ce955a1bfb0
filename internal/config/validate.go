package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/yogi/internal/timeutil"
)

const builtinBell = "bell"

var (
	minFrameInterval = 1 * time.Millisecond
	maxFrameInterval = 100 * time.Millisecond

	minFollowInterval = 100 * time.Millisecond
	maxFollowInterval = 500 * time.Millisecond

	minLongPress = 50 * time.Millisecond
	maxLongPress = 2 * time.Second

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}

	if err := validateSound(c.Sound.Bell); err != nil {
		return err
	}

	if c.LegacyAPI.Port == 0 || c.LegacyAPI.Port > 65535 {
		return errInvalidPort.Fmt(c.LegacyAPI.Port)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Settings.LogLevel)) {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}

func (c *Config) validatePlayer() error {
	p := c.Player

	if p.StartTime != "" {
		if err := validateClock(p.StartTime); err != nil {
			return err
		}
	}

	checks := []struct {
		name     string
		value    time.Duration
		min, max time.Duration
	}{
		{"frame interval", p.FrameInterval, minFrameInterval, maxFrameInterval},
		{"follow interval", p.FollowInterval, minFollowInterval, maxFollowInterval},
		{"long press", p.LongPress, minLongPress, maxLongPress},
	}

	for _, check := range checks {
		if check.value < check.min || check.value > check.max {
			return errInvalidInterval.Fmt(
				check.name,
				check.min,
				check.max,
				check.value,
			)
		}
	}

	return nil
}

// validateSound accepts an empty sound, the built-in bell, or an existing
// audio file in a supported format.
func validateSound(sound string) error {
	if sound == "" || sound == BellOff || sound == builtinBell {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	validExts := []string{".mp3", ".ogg", ".flac", ".wav"}

	if !slices.Contains(validExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return nil
}

func validateClock(s string) error {
	if _, err := timeutil.ParseClock(s); err != nil {
		return errInvalidStartTime.Fmt(s)
	}

	return nil
}
