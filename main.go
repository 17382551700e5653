package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/auth"
	"github.com/learnspace/content-service/internal/cache"
	"github.com/learnspace/content-service/internal/config"
	"github.com/learnspace/content-service/internal/events"
	"github.com/learnspace/content-service/internal/handlers"
	"github.com/learnspace/content-service/internal/repositories/postgres"
	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
	"github.com/learnspace/content-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(slogger)
	logger := utils.NewSlogLogger(slogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	if err := repoManager.Initialize(); err != nil {
		logger.Error("Failed to initialize repository", "error", err)
		os.Exit(1)
	}
	repo := repoManager.GetRepository()

	var cacheManager *cache.CacheManager
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		cacheManager = cache.NewCacheManager(redisClient)
		logger.Info("Cache enabled")
	} else {
		cacheManager = cache.NewCacheManager(nil)
		logger.Warn("REDIS_URL not set, caching disabled")
	}

	publisher, err := events.NewPublisher(cfg.KafkaBrokers, slogger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenExpires)

	serviceManager := services.NewServiceManager(repo, validator.New(), logger, cacheManager, publisher, tokens)
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("Event publisher shutdown failed", "error", err)
	}
	if err := repoManager.Shutdown(ctx); err != nil {
		logger.Error("Repository shutdown failed", "error", err)
	}

	logger.Info("Server stopped")
}
