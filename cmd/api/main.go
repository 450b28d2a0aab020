package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"authgate/internal/config"
	"authgate/internal/db"
	httpserver "authgate/internal/http"
	"authgate/internal/repository"
	"authgate/internal/seed"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()

	gdb := db.Connect(cfg.DSN)
	db.AutoMigrate(gdb)

	if cfg.SeedOnBoot {
		seeder := seed.New(
			repository.NewUserRepository(gdb),
			repository.NewRoleRepository(gdb),
			repository.NewPermissionRepository(gdb),
			repository.NewLinkRepository(gdb),
			cfg.BcryptCost,
			logger,
		)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	r := httpserver.NewRouter(gdb, cfg, logger)
	log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
