package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/mastersolis/site-gateway/internal/api"
	"github.com/mastersolis/site-gateway/internal/api/handler"
	"github.com/mastersolis/site-gateway/internal/backend"
	"github.com/mastersolis/site-gateway/internal/core/ports"
	mongodb "github.com/mastersolis/site-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/mastersolis/site-gateway/internal/infrastructure/db/redis"
	"github.com/mastersolis/site-gateway/internal/infrastructure/queue"
	"github.com/mastersolis/site-gateway/internal/pkg/config"
	"github.com/mastersolis/site-gateway/internal/session"
	"github.com/mastersolis/site-gateway/pkg/logger"
)

// @title        Site Gateway API
// @version      1.0
// @description  Gateway for the Master Solis site: public content, forms and the session-guarded admin surface.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		rdb = client
		sessions = session.NewRedisStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session store: redis")
	default:
		sessions = session.NewFileStore(cfg.Session.File)
		log.Info().Str("path", cfg.Session.File).Msg("session store: file")
	}

	// --- Submission journal ---
	journal, journalReader, mongoDB := buildJournal(ctx, cfg, log)

	// --- Backend facade ---
	client := backend.NewClient(cfg.Backend.BaseURL, sessions, log)
	facade := backend.NewFacade(client, sessions, log)

	e := api.NewRouter(api.Dependencies{
		API:           facade,
		Sessions:      sessions,
		Journal:       journal,
		JournalReader: journalReader,
		Backend:       client,
		Redis:         rdb,
		Mongo:         mongoDB,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown did not complete cleanly")
	}
}

// buildJournal wires the Mongo-backed submission journal behind the async
// dispatcher. Without a Mongo URI the gateway runs with journaling disabled;
// form forwarding is unaffected.
func buildJournal(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SubmissionJournal, handler.JournalReader, *mongodriver.Database) {
	if cfg.Mongo.URI == "" {
		log.Info().Msg("submission journal disabled (no MONGO_URI)")
		return queue.Discard{}, nil, nil
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	go func() {
		<-ctx.Done()
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	repo := mongodb.NewSubmissionRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("submission index creation failed")
	}

	dispatcher := queue.NewDispatcher(0, repo, log)
	dispatcher.Start(ctx)
	return dispatcher, repo, db
}
