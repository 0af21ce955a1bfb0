package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/yogi/internal/config"
	"github.com/ayoisaiah/yogi/internal/models"
	"github.com/ayoisaiah/yogi/internal/osutil"
	"github.com/ayoisaiah/yogi/internal/pathutil"
	"github.com/ayoisaiah/yogi/internal/static"
	"github.com/ayoisaiah/yogi/internal/ui"
	"github.com/ayoisaiah/yogi/legacyapi"
	"github.com/ayoisaiah/yogi/player"
	"github.com/ayoisaiah/yogi/store"
	"github.com/ayoisaiah/yogi/timeline"
)

const (
	envNoColor     = "NO_COLOR"
	envYogiNoColor = "YOGI_NO_COLOR"
)

// env is what every command that touches the store needs.
type env struct {
	cfg   *config.Config
	repos *store.Repos
	out   io.Writer
}

type envAction func(ctx *cli.Context, e *env) error

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
}

// withConfig loads the configuration and starts logging before running fn.
func withConfig(fn envAction) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		closeLog := setupLogger(cfg.Settings.LogLevel)
		defer closeLog()

		ui.DarkTheme = cfg.Display.DarkTheme

		return fn(ctx, &env{cfg: cfg, out: config.Stdout})
	}
}

// withStore is withConfig plus an open store.
func withStore(fn envAction) cli.ActionFunc {
	return withConfig(func(ctx *cli.Context, e *env) error {
		db, err := store.NewClient(pathutil.DBFilePath())
		if err != nil {
			return err
		}

		defer db.Close()

		e.repos = store.New(db)

		if err := static.Seed(db, e.repos); err != nil {
			slog.WarnContext(ctx.Context, "seeding the store failed", slog.Any("error", err))
		}

		return fn(ctx, e)
	})
}

// resolveSession returns the stored session named by --session, or nil for
// the default session.
func resolveSession(e *env) (*models.Session, error) {
	id := e.cfg.CLI.SessionID
	if id == "" {
		return nil, nil
	}

	sess, err := e.repos.Sessions.Get(id)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

// playAction opens the interactive player.
func playAction(_ *cli.Context, e *env) error {
	sess, err := resolveSession(e)
	if err != nil {
		return err
	}

	p, err := player.New(player.Options{
		Config:  e.cfg,
		Repos:   e.repos,
		Session: sess,
		Bell:    player.NewBell(e.cfg.Sound.Bell),
	})
	if err != nil {
		return err
	}

	return p.Run()
}

// scheduleAction prints the timeline of a session.
func scheduleAction(ctx *cli.Context, e *env) error {
	sess, err := resolveSession(e)
	if err != nil {
		return err
	}

	title, order := player.SessionOrder(e.repos, sess)

	tl, err := timeline.Build(
		order,
		e.repos.Index(),
		timeline.WithStartTime(e.cfg.Player.StartTime),
	)
	if err != nil {
		return err
	}

	return printSchedule(e.out, title, tl, outputFormat(ctx))
}

type format int

const (
	formatText format = iota
	formatJSON
	formatYAML
)

func outputFormat(ctx *cli.Context) format {
	switch {
	case ctx.Bool("json"):
		return formatJSON
	case ctx.Bool("yaml"):
		return formatYAML
	}

	return formatText
}

func printSchedule(w io.Writer, title string, tl *timeline.Timeline, f format) error {
	switch f {
	case formatJSON:
		b, err := json.MarshalIndent(tl.Export(), "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(tl.Export()); err != nil {
			return err
		}

		return enc.Close()
	}

	fmt.Fprintln(w, ui.Yellow(title))
	fmt.Fprintln(w)

	return timeline.WriteSchedule(w, tl)
}

// serveAction serves the legacy exercises endpoint until interrupted.
func serveAction(ctx *cli.Context, e *env) error {
	path := firstNonEmptyString(
		ctx.String("file"),
		e.cfg.LegacyAPI.File,
		pathutil.LegacyFilePath(),
	)

	port := e.cfg.LegacyAPI.Port
	if ctx.IsSet("port") {
		port = ctx.Uint("port")
	}

	return legacyapi.New(path).ListenAndServe(ctx.Context, port)
}

// editConfigAction handles the edit-config command which opens the yogi
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if YOGI_NO_COLOR is set
	if _, exists := os.LookupEnv(envYogiNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting yogi")

	return nil
}
