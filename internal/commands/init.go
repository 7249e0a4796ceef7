package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vrmiguel/porquinho/internal/config"
	"github.com/vrmiguel/porquinho/internal/gitops"
)

func newInitCommand(a *app) *cobra.Command {
	var useGit bool
	var currency string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a, useGit, currency)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "track the data directory with git and commit every change")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 code used to print amounts (e.g. BRL)")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, useGit bool, currency string) error {
	dir := a.books.DataDir()
	if err := a.books.EnsureDir(); err != nil {
		return err
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}

	// An existing config file is left alone.
	if _, err := os.Stat(a.configPath); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Config %s already exists\n", a.configPath)
	} else if errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.DataDir = dir
		cfg.Currency = currency
		cfg.Git.AutoCommit = useGit
		if err := config.Save(a.configPath, cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)
	} else {
		return fmt.Errorf("checking config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized porquinho at %s\n", dir)
	return nil
}
