package app

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/yogi/card"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/store"
)

var kindFlag = &cli.StringFlag{
	Name:    "kind",
	Aliases: []string{"k"},
	Usage:   "Kind of the cards in the set: exercise, story or practical",
	Value:   string(card.Exercise),
}

func bookCommand() *cli.Command {
	return &cli.Command{
		Name:    "book",
		Aliases: []string{"books"},
		Usage:   "Group stories into story books",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every story book",
				Flags:  []cli.Flag{jsonFlag},
				Action: withStore(bookListAction),
			},
			{
				Name:      "add",
				Usage:     "Add a story book holding the given stories",
				ArgsUsage: "<story id>...",
				Flags:     []cli.Flag{titleFlag},
				Action:    withStore(bookAddAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more story books",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    withStore(bookDeleteAction),
			},
		},
	}
}

func setCommand() *cli.Command {
	return &cli.Command{
		Name:    "set",
		Aliases: []string{"sets"},
		Usage:   "Save reusable sequences of cards",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every card set",
				Flags:  []cli.Flag{jsonFlag},
				Action: withStore(setListAction),
			},
			{
				Name:      "add",
				Usage:     "Add a card set holding the given cards",
				ArgsUsage: "<card id>...",
				Flags:     []cli.Flag{titleFlag, kindFlag},
				Action:    withStore(setAddAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more card sets",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    withStore(setDeleteAction),
			},
		},
	}
}

func listRecords[T any](
	w io.Writer,
	items []T,
	table func([]T) [][]string,
	name string,
	asJSON bool,
) error {
	if asJSON {
		if items == nil {
			items = []T{}
		}

		return printJSON(w, items)
	}

	if len(items) == 0 {
		pterm.Info.Printfln("No %s found", name)
		return nil
	}

	printTable(w, table(items))

	return nil
}

// deleteRecords looks up every id, confirms, then deletes them.
func deleteRecords[T any](
	ctx *cli.Context,
	e *env,
	repo *store.Repository[T],
	table func([]T) [][]string,
	name string,
) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingID.Fmt(name)
	}

	items := make([]T, 0, len(ids))

	for _, id := range ids {
		item, err := repo.Get(id)
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	ok, err := confirmDelete(e.out, table(items), ctx.Bool("yes"))
	if err != nil || !ok {
		return err
	}

	var n int

	for _, id := range ids {
		if repo.Delete(id) {
			n++
		}
	}

	reportDeleted(name, n)

	return nil
}

func bookListAction(ctx *cli.Context, e *env) error {
	return listRecords(
		e.out,
		e.repos.StoryBooks.List(),
		storyBooksTable,
		"story books",
		ctx.Bool("json"),
	)
}

func bookAddAction(ctx *cli.Context, e *env) error {
	book := models.StoryBook{
		Title:   ctx.String("title"),
		Stories: ctx.Args().Slice(),
	}

	if book.Title == "" {
		if err := recordForm(&book.Title, &book.Description).Run(); err != nil {
			return err
		}
	}

	created, err := e.repos.StoryBooks.Create(book)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added story book %s", created.ID)

	return nil
}

func bookDeleteAction(ctx *cli.Context, e *env) error {
	return deleteRecords(ctx, e, e.repos.StoryBooks, storyBooksTable, "story book")
}

func setListAction(ctx *cli.Context, e *env) error {
	return listRecords(
		e.out,
		e.repos.CardSets.List(),
		cardSetsTable,
		"card sets",
		ctx.Bool("json"),
	)
}

func setAddAction(ctx *cli.Context, e *env) error {
	set := models.CardSet{
		Title: ctx.String("title"),
		Kind:  ctx.String("kind"),
		Cards: ctx.Args().Slice(),
	}

	if set.Title == "" {
		if err := recordForm(&set.Title, &set.Description).Run(); err != nil {
			return err
		}
	}

	created, err := e.repos.CardSets.Create(set)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added card set %s", created.ID)

	return nil
}

func setDeleteAction(ctx *cli.Context, e *env) error {
	return deleteRecords(ctx, e, e.repos.CardSets, cardSetsTable, "card set")
}
