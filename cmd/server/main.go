package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajdesai17/finplay/internal/config"
	"github.com/rajdesai17/finplay/internal/database"
	"github.com/rajdesai17/finplay/internal/handlers"
	"github.com/rajdesai17/finplay/internal/repository"
	"github.com/rajdesai17/finplay/internal/security"
	"github.com/rajdesai17/finplay/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.ApplySchema(); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Initialize repositories
	progressRepo := repository.NewProgressRepository(db)
	runRepo := repository.NewRunRepository(db)

	// Initialize services
	progressionService := service.NewProgressionService(progressRepo, cfg.RewardDismissAfter)
	simulationService := service.NewSimulationService(progressionService, runRepo)
	backupService := service.NewBackupService(progressionService, runRepo)

	// Initialize handlers
	limiter := security.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	progressHandler := handlers.NewProgressHandler(progressionService, simulationService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/progress", progressHandler.GetProgress)
	mux.HandleFunc("POST /api/rewards", handlers.RateLimit(limiter, progressHandler.ApplyReward))
	mux.HandleFunc("GET /api/rewards/current", progressHandler.CurrentReward)
	mux.HandleFunc("POST /api/rewards/dismiss", handlers.RateLimit(limiter, progressHandler.DismissReward))
	mux.HandleFunc("POST /api/reset", handlers.RateLimit(limiter, progressHandler.Reset))

	mux.HandleFunc("GET /api/simulations", simulationHandler.List)
	mux.HandleFunc("POST /api/simulations/{id}/complete", handlers.RateLimit(limiter, simulationHandler.Complete))
	mux.HandleFunc("GET /api/report", simulationHandler.Report)

	mux.HandleFunc("GET /api/backup", backupHandler.Export)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
