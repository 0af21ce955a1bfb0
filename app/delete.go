package app

import (
	"io"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// confirmDelete prints the records about to be deleted and asks for
// confirmation unless skip is set.
func confirmDelete(w io.Writer, table [][]string, skip bool) (bool, error) {
	printTable(w, table)

	if skip {
		return true, nil
	}

	var ok bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("The above will be deleted permanently. Proceed?").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}

	if !ok {
		pterm.Info.Println("Nothing was deleted")
	}

	return ok, nil
}

func reportDeleted(kind string, n int) {
	pterm.Success.Printfln("%d %s record(s) deleted", n, kind)
}
