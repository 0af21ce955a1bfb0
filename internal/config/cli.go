package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/yogi/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Start          string
	Bell           string
	SessionCmd     string
	SessionID      string
	FollowInterval time.Duration
	DisableNotify  bool
	JSON           bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that are not set leave the file values untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Start:          ctx.String("start"),
			Bell:           ctx.String("bell"),
			SessionCmd:     ctx.String("cmd"),
			SessionID:      ctx.String("session"),
			FollowInterval: ctx.Duration("follow-interval"),
			DisableNotify:  ctx.Bool("disable-notification"),
			JSON:           ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Start != "" {
		clock, err := timeutil.FromStr(opts.Start, now)
		if err != nil {
			return errInvalidCLIStart.Fmt(opts.Start).Wrap(err)
		}

		c.Player.StartTime = clock
	}

	if opts.Bell != "" {
		c.Sound.Bell = opts.Bell
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.FollowInterval > 0 {
		c.Player.FollowInterval = opts.FollowInterval
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.SessionID = opts.SessionID
	c.CLI.JSON = opts.JSON

	return nil
}
