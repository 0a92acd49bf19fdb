package main

import (
	"context"
	"flag"
	"log"
	"os"

	"askmedix-be/internal/bootstrap"
	"askmedix-be/internal/config"
	"askmedix-be/pkg/database"

	"github.com/fatih/color"
)

// Standalone (re-)indexer: provisions the vector index and pushes the corpus
// through the chunk/embed/upsert pipeline without starting the HTTP server.
func main() {
	force := flag.Bool("force", false, "ingest even when the index already holds vectors")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to GORM DB: %v", err)
		os.Exit(1)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	created, err := container.VectorStore.EnsureIndex(ctx, cfg.VectorIndex.Dimension)
	if err != nil {
		color.Red("Unable to provision vector index: %v", err)
		os.Exit(1)
	}
	if created {
		color.Green("Vector index %q created", cfg.VectorIndex.IndexName)
	} else {
		color.Yellow("Vector index %q already exists", cfg.VectorIndex.IndexName)
	}

	count, err := container.VectorStore.Count(ctx)
	if err != nil {
		log.Printf("Warning: failed to count indexed chunks: %v", err)
	}
	if count > 0 && !*force {
		color.Yellow("Index already holds %d vectors, skipping (use -force to re-ingest)", count)
		return
	}

	color.Cyan("Ingesting corpus from %s ...", cfg.Ingestion.SourcePath)
	chunks, err := container.IngestionService.Ingest(ctx)
	if err != nil {
		color.Red("Corpus ingestion failed: %v", err)
		os.Exit(1)
	}
	color.Green("Done: %d chunks indexed", chunks)
}
