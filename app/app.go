package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/yogi/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the yogi app instance.
func Get() *cli.App {
	yogiApp := &cli.App{
		Name: "yogi",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Yogi plans and plays yoga sessions in the terminal. A session is an
		ordered list of exercises, stories and practical prompts laid out on a
		timeline that can be reordered while it plays.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play a session in the interactive player",
				Flags:  playerFlags(),
				Action: withStore(playAction),
			},
			{
				Name:   "schedule",
				Usage:  "Print the timeline of a session",
				Flags:  append(playerFlags(), jsonFlag, yamlFlag),
				Action: withStore(scheduleAction),
			},
			exerciseKind.command(),
			storyKind.command(),
			practicalKind.command(),
			sessionCommand(),
			bookCommand(),
			setCommand(),
			{
				Name:   "serve",
				Usage:  "Serve the exercises JSON file over HTTP",
				Flags:  []cli.Flag{portFlag, fileFlag},
				Action: withConfig(serveAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return yogiApp
}
