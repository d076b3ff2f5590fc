// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"volunteer_hub_backend/internal/app"
	"volunteer_hub_backend/internal/config"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/platform/logger"
	"volunteer_hub_backend/internal/seed"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		runSeed()
		return
	}

	startServer()
}

// runSeed loads the demo dataset and exits. Unlike the server, seeding needs
// a reachable database.
func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration for seed: %v", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger for seed: %v", err)
	}

	handle := database.NewHandle(cfg, appLogger)
	defer database.Close(handle)

	db, ok := handle.DB()
	if !ok {
		appLogger.Fatal("FATAL: Cannot seed, database not available.")
	}
	if err := app.AutoMigrate(db); err != nil {
		appLogger.Fatal("FATAL: Failed to run schema migration before seed", zap.Error(err))
	}

	if err := seed.NewRunner(handle, appLogger).Run(context.Background()); err != nil {
		appLogger.Fatal("FATAL: Seed failed", zap.Error(err))
	}
	appLogger.Info("Seed completed successfully.")
}

func startServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	go func() {
		if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("FATAL: Server failed to start or crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
	log.Println("INFO: Application exiting.")
}
