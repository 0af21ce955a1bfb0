package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config file keys.
const (
	keyStartTime            = "player.start_time"
	keyFrameInterval        = "player.frame_interval"
	keyFollowInterval       = "player.follow_interval"
	keyLongPress            = "player.long_press"
	keyBell                 = "sound.bell"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "settings.log_level"
	keyDarkTheme            = "display.dark_theme"
	keyLegacyPort           = "legacy_api.port"
	keyLegacyFile           = "legacy_api.file"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath. A file with the default settings is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStartTime, "")
	v.SetDefault(keyFrameInterval, "16ms")
	v.SetDefault(keyFollowInterval, "250ms")
	v.SetDefault(keyLongPress, "200ms")
	v.SetDefault(keyBell, builtinBell)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLegacyPort, 1111)
	v.SetDefault(keyLegacyFile, "")

	if c.prompted {
		v.Set(keyStartTime, c.Player.StartTime)
		v.Set(keyBell, c.Sound.Bell)
		v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
// Duration strings are decoded by Viper's default hooks.
func loadViperConfig(v *viper.Viper, c *Config) error {
	cli := c.CLI

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.CLI = cli

	return nil
}
