package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/taskforge/todo-system/docs"
	"github.com/taskforge/todo-system/internal/api"
	"github.com/taskforge/todo-system/internal/core/auth"
	"github.com/taskforge/todo-system/internal/core/service"
	mongorepo "github.com/taskforge/todo-system/internal/infrastructure/db/mongo"
	redisstore "github.com/taskforge/todo-system/internal/infrastructure/db/redis"
	"github.com/taskforge/todo-system/internal/infrastructure/notify"
	"github.com/taskforge/todo-system/internal/infrastructure/queue"
	"github.com/taskforge/todo-system/internal/pkg/config"
	"github.com/taskforge/todo-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                      To-Do System API
// @version                    1.0
// @description                Multi-tenant to-do backend with JWT authentication.
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Datastores ---
	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("task index creation failed")
	}

	// --- Tokens ---
	codec, err := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec setup failed")
	}

	// --- Notification pipeline ---
	sender := notify.NewLogSender(log)
	dedup := redisstore.NewDedupChecker(rdb)
	notificationService := service.NewNotificationService(sender, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.NotifierWorkers, notificationService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, codec, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
