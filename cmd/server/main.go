package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "gardenhub-backend/internal/api/http"
	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/config"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository/postgres"
	"gardenhub-backend/internal/security"
	"gardenhub-backend/internal/service"
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
	logger.Info("Starting GardenHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// All order scheduling runs on the garden's local calendar
	clk := clock.NewReal(cfg.Location())

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	inviteSvc := service.NewInviteService(store.UserRepository, emailSvc, cfg.App.BaseURL)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	entitlementSvc := service.NewEntitlementService(
		store.UserRepository,
		store.GardenRepository,
		store.PlotRepository,
		store.OrderRepository,
		clk,
	)
	gardenSvc := service.NewGardenService(store.GardenRepository, store.UserRepository, inviteSvc)
	plotSvc := service.NewPlotService(
		store.PlotRepository,
		store.GardenRepository,
		store.CropRepository,
		store.UserRepository,
		inviteSvc,
	)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.PlotRepository,
		store.GardenRepository,
		store.CropRepository,
		store.PickRepository,
		store.NotificationRepository,
		emailSvc,
		clk,
	)
	pickSvc := service.NewPickService(
		store.PickRepository,
		store.PlotRepository,
		store.GardenRepository,
		store.OrderRepository,
		store.UserRepository,
		store.CropRepository,
		store.NotificationRepository,
		emailSvc,
		clk,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	cropSvc := service.NewCropService(store.CropRepository)

	// Initialize HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Users:         userSvc,
		Entitlements:  entitlementSvc,
		Gardens:       gardenSvc,
		Plots:         plotSvc,
		Orders:        orderSvc,
		Picks:         pickSvc,
		Notifications: noteSvc,
		Crops:         cropSvc,
	}, tokenManager, clk)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, handlers(router)); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}

// handlers wraps the router with request logging
func handlers(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Request", "method", r.Method, "path", r.URL.Path)
		router.ServeHTTP(w, r)
	})
}
