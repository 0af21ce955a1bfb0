// Package config loads yogi's settings from the config file and command-line
// flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Player        PlayerConfig       `mapstructure:"player"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		LegacyAPI     LegacyAPIConfig    `mapstructure:"legacy_api"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`

		// prompted is set when the first-run prompt has supplied values that
		// should be written to a new config file
		prompted bool
	}

	// PlayerConfig holds the timing settings of the session player
	PlayerConfig struct {
		// StartTime is the wall-clock time ("HH:MM") the session is planned
		// to start. Empty shows relative times only.
		StartTime      string        `mapstructure:"start_time"`
		FrameInterval  time.Duration `mapstructure:"frame_interval"`
		FollowInterval time.Duration `mapstructure:"follow_interval"`
		LongPress      time.Duration `mapstructure:"long_press"`
	}

	// SoundConfig holds sound-related settings
	SoundConfig struct {
		// Bell is played when the active card changes: "bell" for the
		// built-in tone, a path to an audio file, or empty for silence
		Bell string `mapstructure:"bell"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		Cmd      string `mapstructure:"cmd"`
		LogLevel string `mapstructure:"log_level"`
	}

	// LegacyAPIConfig configures the file-backed exercises endpoint
	LegacyAPIConfig struct {
		File string `mapstructure:"file"`
		Port uint   `mapstructure:"port"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds values that only come from command-line flags
	CLIConfig struct {
		SessionID string
		JSON      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// BellOff disables the bell when passed as a sound.
const BellOff = "off"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
