package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutriplan/internal/config"
	"nutriplan/internal/repository"
	"nutriplan/internal/service"
)

// Publishes the shipped questionnaire catalog as a template document.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	catalogSvc := service.NewCatalogService(repository.NewCatalogRepo(db))

	template, err := catalogSvc.Publish(ctx, cfg.CatalogVersion)
	if err != nil {
		log.Fatalf("Failed to publish catalog: %v", err)
	}

	log.Printf("Published catalog %s: %d questions, %d branching keys",
		template.Version, len(template.Questions), len(template.BranchingKeys))
}
