package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vrmiguel/porquinho/internal/entry"
	"github.com/vrmiguel/porquinho/internal/model"
)

func newEntryCommand(a *app, kind model.Kind) *cobra.Command {
	short := "Record money going out today"
	if kind == model.Credit {
		short = "Record money coming in today"
	}

	return &cobra.Command{
		Use:   kind.Key() + " <amount> <description>",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEntry(a, kind, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return runEntry(cmd, a, e)
		},
	}
}

func newEntry(a *app, kind model.Kind, amountArg, description string) (model.Entry, error) {
	amount, err := entry.ParseAmount(amountArg)
	if err != nil {
		return model.Entry{}, err
	}

	e := model.Entry{
		Day:         uint8(a.now().Day()),
		Kind:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}
	if e.Description == "" {
		return model.Entry{}, errors.New("description must not be empty")
	}

	// The line is stored as text, so it must read back as the same entry.
	got, err := entry.Parse(entry.Format(e))
	if err != nil {
		return model.Entry{}, err
	}
	if !got.Equal(e) {
		return model.Entry{}, fmt.Errorf("description %q cannot be stored", e.Description)
	}
	return e, nil
}

func runEntry(cmd *cobra.Command, a *app, e model.Entry) error {
	b, err := a.books.Append(a.currentMonth(), e)
	if err != nil {
		return err
	}
	return a.saved(cmd, b, fmt.Sprintf("%s: %s", e.Kind.Key(), entry.Format(e)))
}
