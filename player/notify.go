package player

import (
	"context"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/yogi/internal/pathutil"
)

// Notifier shows a desktop notification.
type Notifier func(title, msg string) error

// desktopNotify sends a desktop notification with the application icon if
// one is installed in the data directory.
func desktopNotify(title, msg string) error {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "static", "icon.png"),
	)

	return beeep.Notify(title, msg, pathToIcon)
}

// runSessionCmd executes the command configured to run when a session ends.
func runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, name, args...)

	err = cmd.Run()
	if err != nil {
		slog.ErrorContext(ctx, "session command failed",
			slog.String("cmd", sessionCmd),
			slog.Any("error", err),
		)
	}

	return err
}
