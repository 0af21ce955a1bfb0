package app

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/reorder"
	"github.com/ayoisaiah/yogi/store"
	"github.com/ayoisaiah/yogi/timeline"
)

var (
	fromFlag = &cli.UintFlag{
		Name:  "from",
		Usage: "Position (starting at 1) of the card to move",
	}

	toFlag = &cli.UintFlag{
		Name:  "to",
		Usage: "Position (starting at 1) the card is moved to",
	}
)

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:    "session",
		Aliases: []string{"sessions"},
		Usage:   "Plan sessions by ordering cards",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every session",
				Flags:  []cli.Flag{jsonFlag},
				Action: withStore(sessionListAction),
			},
			{
				Name:      "show",
				Usage:     "Show the schedule of a session",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{startFlag, jsonFlag, yamlFlag},
				Action:    withStore(sessionShowAction),
			},
			{
				Name:      "add",
				Usage:     "Add a session holding the given cards",
				ArgsUsage: "[card id]...",
				Flags:     []cli.Flag{titleFlag},
				Action:    withStore(sessionAddAction),
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more sessions",
				ArgsUsage: "<id>...",
				Flags:     []cli.Flag{yesFlag},
				Action:    withStore(sessionDeleteAction),
			},
			{
				Name:      "reorder",
				Usage:     "Move one card with --from and --to, or replace the whole order",
				ArgsUsage: "<id> [card id]...",
				Flags:     []cli.Flag{fromFlag, toFlag},
				Action:    withStore(sessionReorderAction),
			},
			{
				Name:      "append",
				Usage:     "Append cards to the end of a session",
				ArgsUsage: "<id> <card id>...",
				Action:    withStore(sessionAppendAction),
			},
			{
				Name:      "remove",
				Usage:     "Remove the card at a position (starting at 1)",
				ArgsUsage: "<id> <position>",
				Action:    withStore(sessionRemoveAction),
			},
			{
				Name:      "add-set",
				Usage:     "Append every card of a card set",
				ArgsUsage: "<id> <set id>",
				Action:    withStore(sessionAddSetAction),
			},
			{
				Name:      "add-book",
				Usage:     "Append every story of a story book",
				ArgsUsage: "<id> <book id>",
				Action:    withStore(sessionAddBookAction),
			},
		},
	}
}

func sessionListAction(ctx *cli.Context, e *env) error {
	return listSessions(e.out, e.repos, ctx.Bool("json"))
}

func listSessions(w io.Writer, repos *store.Repos, asJSON bool) error {
	table := func(sessions []models.Session) [][]string {
		return sessionsTable(sessions, repos.Index())
	}

	return listRecords(w, repos.Sessions.List(), table, "sessions", asJSON)
}

func sessionShowAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	sess, err := e.repos.Sessions.Get(id)
	if err != nil {
		return err
	}

	tl, err := timeline.Build(
		sess.Exercises,
		e.repos.Index(),
		timeline.WithStartTime(e.cfg.Player.StartTime),
	)
	if err != nil {
		return err
	}

	return printSchedule(e.out, sess.Title, tl, outputFormat(ctx))
}

func sessionAddAction(ctx *cli.Context, e *env) error {
	sess := models.Session{
		Title:     ctx.String("title"),
		Exercises: ctx.Args().Slice(),
	}

	if sess.Title == "" {
		if err := recordForm(&sess.Title, &sess.Description).Run(); err != nil {
			return err
		}
	}

	created, err := e.repos.Sessions.Create(sess)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Added session %s", created.ID)

	return nil
}

func sessionDeleteAction(ctx *cli.Context, e *env) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingID.Fmt("session")
	}

	sessions := make([]models.Session, 0, len(ids))

	for _, id := range ids {
		sess, err := e.repos.Sessions.Get(id)
		if err != nil {
			return err
		}

		sessions = append(sessions, sess)
	}

	table := sessionsTable(sessions, e.repos.Index())

	ok, err := confirmDelete(e.out, table, ctx.Bool("yes"))
	if err != nil || !ok {
		return err
	}

	var n int

	for _, id := range ids {
		if e.repos.Sessions.Delete(id) {
			n++
		}
	}

	reportDeleted("session", n)

	return nil
}

// toIndex converts a 1-based position into an index of a list of length n.
func toIndex(pos, n int) (int, error) {
	if pos < 1 || pos > n {
		return 0, errInvalidPosition.Fmt(strconv.Itoa(pos), n)
	}

	return pos - 1, nil
}

func parsePosition(s string, n int) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidPosition.Fmt(s, n)
	}

	return toIndex(pos, n)
}

// moveCard moves the card at position from to position to. Both positions
// start at 1.
func moveCard(repos *store.Repos, id string, from, to uint) (models.Session, error) {
	sess, err := repos.Sessions.Get(id)
	if err != nil {
		return sess, err
	}

	n := len(sess.Exercises)

	i, err := toIndex(int(from), n)
	if err != nil {
		return sess, err
	}

	j, err := toIndex(int(to), n)
	if err != nil {
		return sess, err
	}

	return repos.Sessions.Reorder(id, reorder.Move(sess.Exercises, i, j))
}

func sessionReorderAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	var (
		sess models.Session
		err  error
	)

	if ctx.IsSet("from") || ctx.IsSet("to") {
		sess, err = moveCard(e.repos, id, ctx.Uint("from"), ctx.Uint("to"))
	} else {
		order := ctx.Args().Tail()
		if len(order) == 0 {
			return errMissingCards
		}

		sess, err = e.repos.Sessions.Reorder(id, order)
	}

	if err != nil {
		return err
	}

	return printOrder(e.out, e.repos, sess)
}

func sessionAppendAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	cards := ctx.Args().Tail()
	if len(cards) == 0 {
		return errMissingCards
	}

	sess, err := e.repos.Sessions.AppendItems(id, cards...)
	if err != nil {
		return err
	}

	return printOrder(e.out, e.repos, sess)
}

func sessionRemoveAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	sess, err := e.repos.Sessions.Get(id)
	if err != nil {
		return err
	}

	i, err := parsePosition(ctx.Args().Get(1), len(sess.Exercises))
	if err != nil {
		return err
	}

	sess, err = e.repos.Sessions.RemoveAt(id, i)
	if err != nil {
		return err
	}

	return printOrder(e.out, e.repos, sess)
}

func sessionAddSetAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	setID := ctx.Args().Get(1)
	if setID == "" {
		return errMissingID.Fmt("card set")
	}

	sess, err := e.repos.AppendSet(id, setID)
	if err != nil {
		return err
	}

	return printOrder(e.out, e.repos, sess)
}

func sessionAddBookAction(ctx *cli.Context, e *env) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID.Fmt("session")
	}

	bookID := ctx.Args().Get(1)
	if bookID == "" {
		return errMissingID.Fmt("story book")
	}

	sess, err := e.repos.AppendBook(id, bookID)
	if err != nil {
		return err
	}

	return printOrder(e.out, e.repos, sess)
}

// printOrder prints the relative schedule of a session after an edit.
func printOrder(w io.Writer, repos *store.Repos, sess models.Session) error {
	tl, err := timeline.Build(sess.Exercises, repos.Index())
	if err != nil {
		return err
	}

	return printSchedule(w, sess.Title, tl, formatText)
}
