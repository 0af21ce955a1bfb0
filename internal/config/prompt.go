package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗   ██╗ ██████╗  ██████╗ ██╗
╚██╗ ██╔╝██╔═══██╗██╔════╝ ██║
 ╚████╔╝ ██║   ██║██║  ███╗██║
  ╚██╔╝  ██║   ██║██║   ██║██║
   ██║   ╚██████╔╝╚██████╔╝██║
   ╚═╝    ╚═════╝  ╚═════╝ ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Bell      string
	StartTime string
	Notify    bool
}

// WithPromptConfig returns an Option that asks for the main settings when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Bell:   builtinBell,
		Notify: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure yogi for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'yogi edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sound when the next card begins").
				Options(
					huh.NewOption("Bell", builtinBell).Selected(true),
					huh.NewOption("Silent", ""),
				).
				Value(&opts.Bell),
			huh.NewConfirm().
				Title("Show a desktop notification when a session ends?").
				Value(&opts.Notify),
			huh.NewInput().
				Title("Usual start time (HH:MM, leave empty for relative times)").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}

					return validateClock(s)
				}).
				Value(&opts.StartTime),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Sound.Bell = opts.Bell
	c.Notifications.Enabled = opts.Notify
	c.Player.StartTime = opts.StartTime
	c.prompted = true
}
