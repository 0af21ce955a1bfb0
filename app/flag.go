package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sessionFlag = &cli.StringFlag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "The id of the session to use. Defaults to a session holding every exercise",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Plan the session to start at a wall-clock time (e.g. '07:30' or 'in 10 minutes')",
	}

	bellFlag = &cli.StringFlag{
		Name:  "bell",
		Usage: "Sound played when the active card changes: 'bell', a path to an audio file, or 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after the session is finished",
	}

	followIntervalFlag = &cli.DurationFlag{
		Name:  "follow-interval",
		Usage: "How often the player checks for a new active card (between 100ms and 500ms)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is finished",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the output as YAML",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the exercises endpoint",
	}

	fileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to the JSON file served by the exercises endpoint",
	}

	titleFlag = &cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Title of the new record. Prompts for input when omitted",
	}
)

// playerFlags are the flags accepted by the play and schedule commands.
func playerFlags() []cli.Flag {
	return []cli.Flag{
		sessionFlag,
		startFlag,
		bellFlag,
		sessionCmdFlag,
		followIntervalFlag,
		disableNotificationFlag,
	}
}
