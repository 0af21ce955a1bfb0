package app

import (
	"fmt"

	"github.com/ayoisaiah/yogi/internal/ui"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		ui.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		ui.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		ui.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		ui.Yellow("COMMANDS"),
		ui.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		ui.Yellow("OPTIONS"),
		ui.Green("-{{$element}}"),
		ui.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		ui.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		ui.Yellow("PLAYER KEYS"),
		keysHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/yogi\n",
		ui.Yellow("WEBSITE"),
	)

	return description + usage + version + commands + options + env + keys + website
}

func envHelp() string {
	return `
YOGI_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

YOGI_ENV: set to a name (e.g. "dev") to keep a separate config file, database and log.`
}

func keysHelp() string {
	return `
space play/pause · n/p next/previous card · r reset · enter jump to the selected card
j/k select · J/K move the selected card · x remove it · tab palette · a add from the palette · q quit

Drag rows with the mouse to reorder. Hold a palette card to drag it into the session, or tap it to append.`
}
