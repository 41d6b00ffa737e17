package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spartancutz/barber-discovery/internal/api"
	"github.com/spartancutz/barber-discovery/internal/infrastructure/config"
	mongodb "github.com/spartancutz/barber-discovery/internal/infrastructure/db/mongo"
	redisdb "github.com/spartancutz/barber-discovery/internal/infrastructure/db/redis"
	"github.com/spartancutz/barber-discovery/internal/infrastructure/embedding"
	"github.com/spartancutz/barber-discovery/internal/infrastructure/storage"
	"github.com/spartancutz/barber-discovery/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Barber Discovery API
// @version      1.0
// @description  Catalog search, session booking and image similarity search for barbers.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongodb.NewBarberRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure barber indexes")
	}
	if err := mongodb.NewSessionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure session indexes")
	}

	uploads, err := storage.NewUploadStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir unavailable")
	}

	embedder := embedding.NewVertexEmbedder(embedding.Config{
		Project:  cfg.Vertex.Project,
		Location: cfg.Vertex.Location,
		Token:    cfg.Vertex.Token,
	}, log)

	e := api.NewRouter(api.Dependencies{
		DB:        db,
		Redis:     rdb,
		Embedder:  embedder,
		Uploads:   uploads,
		Neighbors: cfg.ImageSearch.Neighbors,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
