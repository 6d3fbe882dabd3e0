package main

import (
	"context"
	"log"

	"dept-tracker-be/internal/bootstrap"
	"dept-tracker-be/internal/config"
	"dept-tracker-be/internal/server"
	"dept-tracker-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database. A missing or unreachable primary is not fatal:
	// the failover gateways serve from the in-memory tier.
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Printf("[WARN] Primary database unavailable, running fallback-only: %v", err)
		gormDB = nil
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Notification Service...")
		if err := container.NotificationService.Start(context.Background()); err != nil {
			log.Printf("Background Notification Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
