package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutriplan/internal/cache"
	"nutriplan/internal/catalog"
	"nutriplan/internal/config"
	"nutriplan/internal/repository"
	"nutriplan/internal/service"
)

// App holds the wired application dependencies
type App struct {
	SessionService *service.SessionService
	CatalogService *service.CatalogService

	mongoClient *mongo.Client
	redisClient *redis.Client
}

// New connects the backing stores and wires services over them
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := mongoClient.Database(cfg.MongoDatabase)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	intakeRepo := repository.NewIntakeRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	sessionCache := cache.NewSessionCache(rdb)

	sessionSvc := service.NewSessionService(sessionCache, intakeRepo, catalog.NewNavigator())
	catalogSvc := service.NewCatalogService(catalogRepo)

	return &App{
		SessionService: sessionSvc,
		CatalogService: catalogSvc,
		mongoClient:    mongoClient,
		redisClient:    rdb,
	}, nil
}

// Close releases the backing connections
func (a *App) Close(ctx context.Context) {
	a.redisClient.Close()
	a.mongoClient.Disconnect(ctx)
}
