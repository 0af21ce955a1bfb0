package ui

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used by the player.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Active    lipgloss.Style
	Past      lipgloss.Style
	Missing   lipgloss.Style
	Cursor    lipgloss.Style
	Heading   lipgloss.Style
}

// NewStyle returns the player styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	accent := lipgloss.Color("#B0DB43")
	secondary := lipgloss.Color("#12EAEA")
	hint := lipgloss.Color("#7C7C7C")
	warn := lipgloss.Color("#E5707E")

	if !dark {
		accent = lipgloss.Color("#4E7A00")
		secondary = lipgloss.Color("#007C89")
		hint = lipgloss.Color("#5C5C5C")
		warn = lipgloss.Color("#B3001B")
	}

	return Style{
		Base:      lipgloss.NewStyle().PaddingLeft(2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Active:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Past:      lipgloss.NewStyle().Foreground(hint).Faint(true),
		Missing:   lipgloss.NewStyle().Foreground(warn).Italic(true),
		Cursor:    lipgloss.NewStyle().Foreground(secondary).Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(hint).Underline(true),
	}
}
