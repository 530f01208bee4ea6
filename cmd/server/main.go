package main

import (
	"net/http"
	"os"

	"github.com/GDOmega/pointercrate/internal/api"
	"github.com/GDOmega/pointercrate/internal/config"
	"github.com/GDOmega/pointercrate/internal/database"
	"github.com/GDOmega/pointercrate/internal/handler"
	"github.com/GDOmega/pointercrate/internal/logger"
	"github.com/GDOmega/pointercrate/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Brancher la configuration des listes et le cache des statistiques
	handler.Setup(cfg)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s (list size %d, extended %d)", cfg.Port, cfg.ListSize, cfg.ExtendedListSize)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
