package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Exiting")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			config.SetupLogging(c)
			cfg = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), cfg)
			},
		},
		newSeedCmd(&cfg),
		newAboutCmd(&cfg),
	)

	return root
}

// openDatabase connects the configured store and bootstraps it.
func openDatabase(ctx context.Context, c config.Config) (database.Database, error) {
	var store database.Store
	switch c.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("Using in-memory store, data is lost on exit")
		store = database.NewMemoryStore()
	default:
		pg, err := database.OpenPostgres(c.DatabaseURL)
		if err != nil {
			return database.Database{}, fmt.Errorf("connect to database: %w", err)
		}
		store = pg
	}

	db := database.New(store)
	if err := db.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return database.Database{}, fmt.Errorf("bootstrap database: %w", err)
	}
	return db, nil
}

var errInterrupted = errors.New("interrupted")

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%w: %s", errInterrupted, <-c)
}
