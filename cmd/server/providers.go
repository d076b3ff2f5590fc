// File: cmd/server/providers.go
package main

import (
	"log"
	"time"

	"volunteer_hub_backend/internal/auth"
	"volunteer_hub_backend/internal/platform/database"

	"go.uber.org/zap"
)

func provideBlocklist() *auth.InMemoryBlocklistService {
	return auth.NewInMemoryBlocklistService(auth.InMemoryBlocklistConfig{
		DefaultExpiration: time.Hour,
		CleanupInterval:   10 * time.Minute,
	})
}

func provideCleanup(logger *zap.Logger, handle *database.Handle) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		database.Close(handle)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
