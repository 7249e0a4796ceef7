package commands

import (
	"github.com/spf13/cobra"
)

func newMonthsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months with a ledger file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			months, err := a.books.Months()
			if err != nil {
				return err
			}
			names := make([]string, len(months))
			for i, m := range months {
				names[i] = m.String()
			}
			return a.render.Months(names)
		},
	}
}
