package main

import (
	"LostFound/internal/config"
	"LostFound/internal/handlers"
	"LostFound/internal/middleware"
	"LostFound/internal/repo"
	"LostFound/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Основной бэкенд — MongoDB. Недоступность не фатальна:
	// failover-репозиторий продолжит работать на in-memory хранилище.
	var primary repo.ItemRepository
	if cfg.MongoURI != "" {
		client, err := repo.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			sugar.Warnw("MongoDB unavailable, serving from in-memory fallback", "error", err)
		} else {
			primary = repo.NewMongoItemRepository(client, cfg.DatabaseName)
			sugar.Infow("MongoDB connected", "db", cfg.DatabaseName)
		}
	} else {
		sugar.Warnw("MONGODB_URI not set, serving from in-memory fallback")
	}

	fallback := repo.NewMemoryItemRepository()
	itemRepo := repo.NewFailoverItemRepository(primary, fallback, sugar)
	itemService := service.NewItemService(itemRepo)

	h := handlers.NewHandler(itemService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseName", cfg.DatabaseName,
		"UploadDir", cfg.UploadDir,
		"UploadMaxMB", cfg.UploadMaxMB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
