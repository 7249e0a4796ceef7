package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTargetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "target <amount>",
		Short: "Set the current month's target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || target < 0 {
				return fmt.Errorf("'%s' is not a valid target: expected a whole, non-negative number", args[0])
			}

			b, err := a.books.Open(a.currentMonth())
			if err != nil {
				return err
			}
			if err := b.SetTarget(target); err != nil {
				return err
			}
			return a.saved(cmd, b, fmt.Sprintf("target: %d", target))
		},
	}
}
