package commands

import (
	"github.com/spf13/cobra"

	"github.com/vrmiguel/porquinho/internal/status"
)

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "status [current|all]",
		Short:     "Show the totals of the current month, or of every month",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"current", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == "all" {
				return runStatusAll(a)
			}
			return runStatusCurrent(a)
		},
	}
}

func runStatusCurrent(a *app) error {
	b, err := a.books.Open(a.currentMonth())
	if err != nil {
		return err
	}
	st, err := status.FromBook(b)
	if err != nil {
		return err
	}
	return a.render.Status(st, true)
}

func runStatusAll(a *app) error {
	books, err := a.books.OpenAll()
	if err != nil {
		return err
	}

	all := make([]*status.Status, 0, len(books))
	for _, b := range books {
		st, err := status.FromBook(b)
		if err != nil {
			return err
		}
		all = append(all, st)
	}
	return a.render.Summaries(all)
}
