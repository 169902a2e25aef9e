package main

import (
	"context"
	"log"

	"notegraph-be/internal/config"
	"notegraph-be/internal/model"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/unitofwork"
	"notegraph-be/internal/service"
	"notegraph-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Running AutoMigrate...")
	if err := database.AutoMigrate(db, model.All()...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Println("Step 2: Seeding default relationship types...")
	relTypes := service.NewRelationshipTypeService(unitofwork.NewRepositoryFactory(db), logger.NewNopLogger())
	if err := relTypes.EnsureDefaults(context.Background()); err != nil {
		log.Fatal("Error: Failed to seed relationship types:", err)
	}

	log.Println("Migration completed successfully")
}
