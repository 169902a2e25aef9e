package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notegraph-be/internal/bootstrap"
	"notegraph-be/internal/config"
	"notegraph-be/internal/model"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/server"
	"notegraph-be/internal/tracer"
	"notegraph-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	if err := cfg.Validate(); err != nil {
		sysLogger.Error("MAIN", "Invalid configuration", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		sysLogger.Error("MAIN", "Unable to connect to database", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB, model.All()...); err != nil {
			sysLogger.Error("MAIN", "Failed to migrate database", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seedCtx, cancelSeed := context.WithTimeout(ctx, 30*time.Second)
	err = container.RelationshipTypeService.EnsureDefaults(seedCtx)
	cancelSeed()
	if err != nil {
		sysLogger.Error("MAIN", "Failed to seed default relationship types", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("MAIN", "Failed to start lifecycle consumer", map[string]interface{}{"error": err.Error()})
	}

	// 6. Run Server
	srv := server.New(cfg, container)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
		}
	case <-ctx.Done():
		sysLogger.Info("MAIN", "Shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			sysLogger.Warn("MAIN", "Server shutdown error", map[string]interface{}{"error": err.Error()})
		}
	}
}
