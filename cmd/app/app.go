package app

import (
	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/repository"
	"blogicum/internal/service"
	"blogicum/internal/storage"
	"context"
	"log"
	"time"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := minioClient.EnsureBucket(ctx, cfg.MinIO.Region); err != nil {
		log.Fatalf("Не удалось подготовить бакет MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, services
}
