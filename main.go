package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/api"
	"catalog_api/internal/config"
	"catalog_api/internal/repository"
	"catalog_api/internal/service"
	"catalog_api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect and ping before serving so no request ever sees an
	// uninitialized store handle.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := storage.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(context.Background())

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	r := gin.Default()
	api.SetupRoutes(r, services, cfg)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
