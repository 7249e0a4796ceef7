package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vrmiguel/porquinho/internal/book"
	"github.com/vrmiguel/porquinho/internal/buildinfo"
	"github.com/vrmiguel/porquinho/internal/config"
	"github.com/vrmiguel/porquinho/internal/gitops"
	"github.com/vrmiguel/porquinho/internal/model"
	"github.com/vrmiguel/porquinho/internal/month"
	"github.com/vrmiguel/porquinho/internal/report"
)

var successColor = color.New(color.FgGreen)

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	configPath string
	dataDir    string
	verbose    bool

	now    func() time.Time
	cfg    *config.Config
	log    *logrus.Logger
	books  *book.Service
	render report.Renderer
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{now: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "porquinho",
		Short:   "Record income and expenses in monthly files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default <user config dir>/porquinho/config.yaml)")
	flags.StringVar(&a.dataDir, "data-dir", "", "directory holding the month files")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newEntryCommand(a, model.Debit))
	rootCmd.AddCommand(newEntryCommand(a, model.Credit))
	rootCmd.AddCommand(newStatusCommand(a))
	rootCmd.AddCommand(newTargetCommand(a))
	rootCmd.AddCommand(newMonthsCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.configPath = path
	}

	cfg, err := config.Resolve(a.configPath, nil)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"data_dir": dir, "config": a.configPath}).Debug("configuration resolved")

	a.books = book.NewService(dir, book.YAML{}, a.log)
	a.render = report.Renderer{
		Out:    cmd.OutOrStdout(),
		Format: report.Formatter{Currency: cfg.Currency},
	}
	return nil
}

func (a *app) currentMonth() month.Month {
	return month.Of(a.now())
}

// saved reports a rewritten month file and commits it when enabled.
func (a *app) saved(cmd *cobra.Command, b *book.Book, message string) error {
	successColor.Fprintf(cmd.OutOrStdout(), "Updated %s\n", b.Path)

	if !a.cfg.Git.AutoCommit {
		return nil
	}
	dir := a.books.DataDir()
	if !gitops.IsRepo(dir) {
		a.log.WithField("data_dir", dir).Warn("git.auto_commit is set but the data dir is not a git repository")
		return nil
	}

	hash, err := gitops.CommitFile(dir, b.Path, message, gitops.Author{
		Name:  a.cfg.Git.AuthorName,
		Email: a.cfg.Git.AuthorEmail,
	})
	if errors.Is(err, gitops.ErrNoChanges) {
		a.log.WithField("month", b.Month).Debug("month file unchanged, nothing to commit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("committing %s: %w", b.Month, err)
	}
	a.log.WithField("commit", hash).Info("committed")
	return nil
}
