package app

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/store"
)

// cardKind wires the list, add, edit and delete commands of one card
// collection.
type cardKind[T any] struct {
	repo   func(r *store.Repos) *store.Repository[T]
	id     func(T) string
	table  func([]T) [][]string
	input  func(T) cardInput
	apply  func(cardInput, T) (T, error)
	name   string
	plural string
	usage  string
	labels formLabels
}

var exerciseKind = cardKind[models.Exercise]{
	name:   "exercise",
	plural: "exercises",
	usage:  "Manage timed exercises",
	repo: func(r *store.Repos) *store.Repository[models.Exercise] {
		return r.Exercises
	},
	id:    func(e models.Exercise) string { return e.ID },
	table: exercisesTable,
	labels: formLabels{
		body:    "Description",
		extra:   "Category",
		minutes: "Duration in minutes",
	},
	input: func(e models.Exercise) cardInput {
		return cardInput{
			Title:   e.Title,
			Body:    e.Description,
			Extra:   e.Category,
			Tags:    joinTags(e.Tags),
			Minutes: formatMinutes(e.DurationMinutes),
		}
	},
	apply: func(in cardInput, e models.Exercise) (models.Exercise, error) {
		m, err := parseMinutes(in.Minutes)
		if err != nil {
			return e, err
		}

		e.Title = in.Title
		e.Description = in.Body
		e.Category = in.Extra
		e.Tags = parseTags(in.Tags)
		e.DurationMinutes = m

		return e, nil
	},
}

var storyKind = cardKind[models.Story]{
	name:   "story",
	plural: "stories",
	usage:  "Manage stories told between exercises",
	repo: func(r *store.Repos) *store.Repository[models.Story] {
		return r.Stories
	},
	id:    func(s models.Story) string { return s.ID },
	table: storiesTable,
	labels: formLabels{
		body:    "Content",
		extra:   "Mood",
		minutes: "Time in minutes (optional)",
	},
	input: func(s models.Story) cardInput {
		return cardInput{
			Title:   s.Title,
			Body:    s.Content,
			Extra:   s.Mood,
			Tags:    joinTags(s.Tags),
			Minutes: formatMinutes(s.Time),
		}
	},
	apply: func(in cardInput, s models.Story) (models.Story, error) {
		m, err := parseMinutes(in.Minutes)
		if err != nil {
			return s, err
		}

		s.Title = in.Title
		s.Content = in.Body
		s.Mood = in.Extra
		s.Tags = parseTags(in.Tags)
		s.Time = m

		return s, nil
	},
}

var practicalKind = cardKind[models.Practical]{
	name:   "practical",
	plural: "practicals",
	usage:  "Manage practical prompts such as fetching a prop",
	repo: func(r *store.Repos) *store.Repository[models.Practical] {
		return r.Practicals
	},
	id:    func(p models.Practical) string { return p.ID },
	table: practicalsTable,
	labels: formLabels{
		body:    "Instruction",
		extra:   "Category",
		minutes: "Time in minutes (optional)",
	},
	input: func(p models.Practical) cardInput {
		return cardInput{
			Title:   p.Title,
			Body:    p.Instruction,
			Extra:   p.Category,
			Tags:    joinTags(p.Tags),
			Minutes: formatMinutes(p.Time),
		}
	},
	apply: func(in cardInput, p models.Practical) (models.Practical, error) {
		m, err := parseMinutes(in.Minutes)
		if err != nil {
			return p, err
		}

		p.Title = in.Title
		p.Instruction = in.Body
		p.Category = in.Extra
		p.Tags = parseTags(in.Tags)
		p.Time = m

		return p, nil
	},
}

func (k cardKind[T]) command() *cli.Command {
	return &cli.Command{
		Name:  k.name,
		Usage: k.usage,
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every " + k.name,
				Flags:  []cli.Flag{jsonFlag},
				Action: withStore(k.listAction),
			},
			{
				Name:   "add",
				Usage:  "Add a new " + k.name,
				Action: withStore(k.addAction),
			},
			{
				Name:      "edit",
				Usage:     "Edit an existing " + k.name,
				ArgsUsage: "<id>",
				Action:    withStore(k.editAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more records",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    withStore(k.deleteAction),
			},
		},
	}
}

func (k cardKind[T]) list(w io.Writer, repos *store.Repos, asJSON bool) error {
	items := sortByID(k.repo(repos).List(), k.id)

	return listRecords(w, items, k.table, k.plural, asJSON)
}

func (k cardKind[T]) listAction(ctx *cli.Context, e *env) error {
	return k.list(e.out, e.repos, ctx.Bool("json"))
}

// create converts the form values and stores a new card.
func (k cardKind[T]) create(repos *store.Repos, in cardInput) (T, error) {
	var zero T

	item, err := k.apply(in, zero)
	if err != nil {
		return zero, err
	}

	return k.repo(repos).Create(item)
}

// update applies the form values to the card with the given id.
func (k cardKind[T]) update(repos *store.Repos, id string, in cardInput) (T, error) {
	current, err := k.repo(repos).Get(id)
	if err != nil {
		return current, err
	}

	item, err := k.apply(in, current)
	if err != nil {
		return current, err
	}

	return k.repo(repos).Update(id, item)
}

func (k cardKind[T]) addAction(_ *cli.Context, e *env) error {
	var in cardInput

	if err := cardForm(&in, k.labels).Run(); err != nil {
		return err
	}

	item, err := k.create(e.repos, in)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added %s %s", k.name, k.id(item))

	return nil
}

func (k cardKind[T]) editAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt(k.name)
	}

	current, err := k.repo(e.repos).Get(id)
	if err != nil {
		return err
	}

	in := k.input(current)

	if err := cardForm(&in, k.labels).Run(); err != nil {
		return err
	}

	if _, err := k.update(e.repos, id, in); err != nil {
		return err
	}

	pterm.Success.Printfln("Updated %s %s", k.name, id)

	return nil
}

func (k cardKind[T]) deleteAction(ctx *cli.Context, e *env) error {
	return deleteRecords(ctx, e, k.repo(e.repos), k.table, k.name)
}
