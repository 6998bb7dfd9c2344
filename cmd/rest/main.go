package main

import (
	"context"
	"log"

	"mozi-streaming-be/internal/bootstrap"
	"mozi-streaming-be/internal/config"
	"mozi-streaming-be/internal/server"
	"mozi-streaming-be/internal/tracer"
	"mozi-streaming-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background consumer error: %v", err)
	}
	container.RetentionService.Run(ctx)

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
