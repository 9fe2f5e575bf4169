package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

func runServe(ctx context.Context, c config.Config) error {
	log.Info().Str("service", c.ServiceName).Str("version", c.ServiceVersion).Msg("Initializing app...")

	db, err := openDatabase(ctx, c)
	if err != nil {
		return err
	}
	defer db.Close()

	if c.SeedOnStart {
		data, err := database.DefaultSeedData()
		if err != nil {
			return err
		}
		if _, err := db.Seed(ctx, data); err != nil {
			return err
		}
	}

	server, err := api.NewServer(db, c)
	if err != nil {
		return err
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(c.ShutdownTimeout())
	if errors.Is(fatalErr, errInterrupted) || errors.Is(fatalErr, http.ErrServerClosed) {
		return nil
	}
	return fatalErr
}
