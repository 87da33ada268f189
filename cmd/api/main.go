// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Quill HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the selected store (PostgreSQL with migrations, or in-memory).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/quill/internal/api"
	"github.com/taibuivan/quill/internal/core/author"
	"github.com/taibuivan/quill/internal/core/post"
	"github.com/taibuivan/quill/internal/platform/config"
	"github.com/taibuivan/quill/internal/platform/constants"
	"github.com/taibuivan/quill/internal/platform/migration"
	pgstore "github.com/taibuivan/quill/internal/platform/postgres"
	redisstore "github.com/taibuivan/quill/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Quill] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(appCtx, constants.StartupTimeout)
	defer startupCancel()

	var health api.HealthDependencies

	// ── 3. Store ──────────────────────────────────────────────────────────
	var (
		authors author.Repository
		posts   post.Repository
	)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		authors = author.NewPostgresRepository(pool)
		posts = post.NewPostgresRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }

	case config.StoreDriverMemory:
		memoryAuthors := author.NewMemoryRepository()
		memoryPosts := post.NewMemoryRepository(memoryAuthors)
		memoryAuthors.RestrictDelete(memoryPosts.HasPostsBy)
		authors, posts = memoryAuthors, memoryPosts
		log.Warn("memory_store_enabled", slog.String("note", "data is lost on restart"))
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		authors, posts = withCache(rdb, cfg, authors, posts, log)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Author:    author.NewHandler(author.NewService(authors, log)),
		Post:      post.NewHandler(post.NewService(posts, log)),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// withCache puts the Redis read-through cache in front of both stores.
func withCache(client *goredis.Client, cfg *config.Config, authors author.Repository, posts post.Repository, log *slog.Logger) (author.Repository, post.Repository) {
	authorCache := redisstore.NewCache[author.Author](client, constants.RedisPrefixAuthor, cfg.CacheTTL)
	postCache := redisstore.NewCache[post.Post](client, constants.RedisPrefixPost, cfg.CacheTTL)

	return author.NewCachedRepository(authors, authorCache, log),
		post.NewCachedRepository(posts, postCache, log)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
