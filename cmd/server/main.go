package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "fixwize-backend/internal/api/http"
	"fixwize-backend/internal/config"
	"fixwize-backend/internal/logger"
	"fixwize-backend/internal/repository/postgres"
	"fixwize-backend/internal/security"
	"fixwize-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FixWize Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.MemberRepository, store.ActivityRepository, tokenManager)
	requestSvc := service.NewRequestService(
		store.PartRequestRepository,
		store.QuoteRepository,
		store.OrganizationRepository,
		store.ActivityRepository,
	)
	quoteSvc := service.NewQuoteService(
		store.QuoteRepository,
		store.PartRequestRepository,
		store.OrganizationRepository,
		store.ActivityRepository,
		emailSvc,
	)
	teamSvc := service.NewTeamService(
		store.MemberRepository,
		store.OrganizationRepository,
		store.ActivityRepository,
		emailSvc,
	)
	activitySvc := service.NewActivityService(store.ActivityRepository)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(authSvc),
		Request:  httpapi.NewRequestHandler(requestSvc),
		Quote:    httpapi.NewQuoteHandler(quoteSvc),
		Team:     httpapi.NewTeamHandler(teamSvc),
		Activity: httpapi.NewActivityHandler(activitySvc),
		Org:      httpapi.NewOrgHandler(store.OrganizationRepository),
	}

	router := httpapi.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
