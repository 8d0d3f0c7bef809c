package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pocketrest"
	"github.com/dmitrymomot/pocketrest/pkg/authstore"
	"github.com/dmitrymomot/pocketrest/pkg/logger"
	"github.com/dmitrymomot/pocketrest/pkg/requestid"
	"github.com/dmitrymomot/pocketrest/pkg/sqlite"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	flagURL       string
	flagState     string
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string

	log    *slog.Logger
	db     *sql.DB
	client *pocketrest.Client
	out    *printer
}

// NewRootCmd creates the root cobra command for the pocketrest CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pocketrest",
		Short: "Command line client for pocketrest backends",
		Long: "pocketrest talks to a REST backend with record collections: it logs in, " +
			"keeps the session in a local SQLite file and reads or writes records.",
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		SilenceUsage:       true,
	}

	root.PersistentFlags().StringVar(&a.flagURL, "url", "", "Backend URL (or POCKETREST_URL env)")
	root.PersistentFlags().StringVar(&a.flagState, "state", defaultStatePath(), "SQLite file holding the session")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.PersistentFlags().StringVarP(&a.flagOutput, "output", "o", "json", "Output format (json, yaml)")

	root.AddCommand(
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newWhoamiCmd(),
		a.newListCmd(),
		a.newGetCmd(),
		a.newFirstCmd(),
		a.newCreateCmd(),
		a.newUpdateCmd(),
		a.newDeleteCmd(),
		a.newWatchCmd(),
		a.newCookieCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = logger.New(
		logger.WithLevel(logger.ParseLevel(a.flagLogLevel)),
		logger.WithFormat(logger.ParseFormat(a.flagLogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	out, err := newPrinter(cmd.OutOrStdout(), a.flagOutput)
	if err != nil {
		return err
	}
	a.out = out

	cfg, err := pocketrest.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.flagURL != "" {
		cfg.URL = a.flagURL
	}
	if cfg.URL == "" {
		return errors.New("backend URL is required: pass --url or set POCKETREST_URL")
	}

	ctx := cmd.Context()
	a.db, err = sqlite.Open(ctx, sqlite.Config{Path: a.flagState})
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}

	a.client, err = pocketrest.NewFromConfig(cfg,
		pocketrest.WithStorage(sqlite.NewStorage(a.db)),
		pocketrest.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	if err := a.client.AuthStore().LoadFromStorage(ctx); err != nil {
		if !errors.Is(err, authstore.ErrCorruptSession) {
			return fmt.Errorf("restore session: %w", err)
		}
		a.log.WarnContext(ctx, "ignoring corrupt stored session", logger.Error(err))
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	var errs []error
	if a.client != nil {
		errs = append(errs, a.client.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

// defaultStatePath returns ~/.config/pocketrest/state.db, or a file in the
// working directory when no config directory is known.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pocketrest.db"
	}
	return filepath.Join(dir, "pocketrest", "state.db")
}
