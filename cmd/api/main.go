package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oxefood/delivery-api/internal/api"
	"github.com/oxefood/delivery-api/internal/infrastructure/config"
	mongoinfra "github.com/oxefood/delivery-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/oxefood/delivery-api/internal/infrastructure/db/redis"
	"github.com/oxefood/delivery-api/internal/infrastructure/queue"
	"github.com/oxefood/delivery-api/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	auditWorkers    = 4
)

// @title        OxeFood Delivery API
// @version      1.0
// @description  Food ordering backend with JWT bearer authentication and role-based access control.
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet, so fail on stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting delivery API")

	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// The dispatcher outlives the signal context: it must keep persisting
	// audits recorded while the server drains, and is stopped after Shutdown.
	auditRepo := mongoinfra.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(auditWorkers, auditRepo, log)
	dispatcher.Start(context.Background())

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	dispatcher.Stop()
}
