package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/teacher-reviews/backend/internal/api/http"
	"github.com/teacher-reviews/backend/internal/cache"
	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/db"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/internal/server"
	"github.com/teacher-reviews/backend/internal/service"
	"github.com/teacher-reviews/backend/pkg/hash"
	"github.com/teacher-reviews/backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("starting teacher reviews api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	var redisClient redis.UniversalClient
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Cache.Redis)
		if err != nil {
			appLogger.Error("redis connect problem", zap.Error(err))
			os.Exit(1)
		}
		appLogger.Info("redis connection done")
	}

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	txManager := repository.NewTxManager(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:    cfg,
		Hasher:    hasher,
		Repos:     repos,
		TxManager: txManager,
		Cache:     redisClient,
	})
	handlers := apiHttp.NewHandlers(services, txManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
