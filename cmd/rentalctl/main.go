// Command rentalctl runs maintenance tasks against the rental database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rental/config"
	logs "rental/internal/infra/log"
	"rental/internal/infra/persistence/postgres"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// runtime is what every subcommand needs once configuration is loaded.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "rentalctl",
		Short:         "Maintenance commands for the rental service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile == "" {
				return nil
			}
			// Variables already set in the environment win over the file.
			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, "load %s", envFile)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file applied before the config is read")

	root.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newAuditCommand(),
	)

	return root
}

// openRuntime loads configuration and connects to the database. The returned
// closer releases the connection pool.
func openRuntime() (*runtime, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, errors.Wrap(err, "create logger")
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return &runtime{cfg: cfg, logger: logger, db: db}, closer, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema, including the booking overlap constraint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, closeDB, err := openRuntime()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := postgres.Migrate(cmd.Context(), rt.db, rt.logger); err != nil {
				return err
			}
			rt.logger.Info("Schema is up to date")

			return nil
		},
	}
}
