package main

import (
	"os"

	"github.com/eren/bootcamphub/internal/pkg/logger"
	"github.com/eren/bootcamphub/internal/server"
)

// @title Bootcamp Hub API
// @version 1.0
// @description API for the bootcamp program directory, with a public contribution workflow that turns submissions into pull requests

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
