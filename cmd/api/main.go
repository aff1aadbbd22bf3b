package main

import (
	"os"

	"github.com/yigit/relcatalog/internal/pkg/logger"
	"github.com/yigit/relcatalog/internal/server"
)

// @title Relationship Catalog API
// @version 1.0
// @description Departments, employees, products, descriptions, students and courses
// @BasePath /api/v1

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
