package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// cardInput holds the raw form values shared by every card kind.
type cardInput struct {
	Title   string
	Body    string
	Extra   string
	Tags    string
	Minutes string
}

// formLabels names the fields that differ between card kinds.
type formLabels struct {
	body    string
	extra   string
	minutes string
}

func parseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	m, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errInvalidMinutes.Fmt(s)
	}

	return m, nil
}

// parseTags splits a comma separated list and drops empty entries.
func parseTags(s string) []string {
	tags := []string{}

	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func formatMinutes(m float64) string {
	if m == 0 {
		return ""
	}

	return strconv.FormatFloat(m, 'f', -1, 64)
}

func cardForm(in *cardInput, labels formLabels) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title),
			huh.NewText().
				Title(labels.body).
				Value(&in.Body),
			huh.NewInput().
				Title(labels.extra).
				Value(&in.Extra),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&in.Tags),
			huh.NewInput().
				Title(labels.minutes).
				Validate(func(s string) error {
					_, err := parseMinutes(s)
					return err
				}).
				Value(&in.Minutes),
		),
	)
}

// recordForm asks for the title and description of a session, story book or
// card set.
func recordForm(title, description *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title),
			huh.NewText().
				Title("Description").
				Value(description),
		),
	)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
