package main

import (
	"context"
	"log"

	"askmedix-be/internal/bootstrap"
	"askmedix-be/internal/config"
	"askmedix-be/internal/server"
	"askmedix-be/internal/tracer"
	"askmedix-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Provision the vector index; ingest when it is fresh or empty
	ctx := context.Background()
	created, err := container.VectorStore.EnsureIndex(ctx, cfg.VectorIndex.Dimension)
	if err != nil {
		log.Panicf("Unable to provision vector index: %v", err)
	}
	count, err := container.VectorStore.Count(ctx)
	if err != nil {
		log.Printf("Warning: failed to count indexed chunks: %v", err)
	}
	if created || count == 0 {
		log.Println("Vector index is empty, running corpus ingestion...")
		chunks, err := container.IngestionService.Ingest(ctx)
		if err != nil {
			log.Panicf("Corpus ingestion failed: %v", err)
		}
		log.Printf("Corpus ingestion complete: %d chunks indexed", chunks)
	}

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()
	go func() {
		log.Println("Background: Starting System Event Consumer...")
		if err := container.SystemEventConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background System Event Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
