package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bondhu-robotics/bondhu/internal/ai"
	"github.com/bondhu-robotics/bondhu/internal/brain"
	"github.com/bondhu-robotics/bondhu/internal/config"
	"github.com/bondhu-robotics/bondhu/internal/database"
	"github.com/bondhu-robotics/bondhu/internal/handlers"
	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/metrics"
	"github.com/bondhu-robotics/bondhu/internal/platform"
	iredis "github.com/bondhu-robotics/bondhu/internal/redis"
	"github.com/bondhu-robotics/bondhu/internal/router"
	"github.com/bondhu-robotics/bondhu/internal/search"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	pool, err := database.NewPostgresPool(ctx, cfg.DB)
	if err != nil {
		slog.Error("connecting to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DB.DSN()); err != nil {
		slog.Error("migrating database", "error", err)
		os.Exit(1)
	}

	// Redis
	redisClient, err := iredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Persistence
	st := store.New(pool, cfg.Face.MatchThreshold)
	contexts := store.NewContextStore(redisClient)

	// Generative backends
	aiClient, err := ai.NewClient(cfg.Ollama)
	if err != nil {
		slog.Error("creating ollama client", "error", err)
		os.Exit(1)
	}
	searchClient := search.NewClient(cfg.Search)

	// Hardware collaborators (console stand-ins off the robot)
	speaker := platform.NewConsoleSpeaker(os.Stdout)
	motion := platform.NewLogMotionDriver(slog.Default())
	camera := platform.NewStubCamera(cfg.Face.EmbeddingDim)

	registry, err := handlers.NewRegistry(
		handlers.NewGreetingHandler(),
		handlers.NewEntertainmentHandler(time.Now().UnixNano()),
		handlers.NewMotionHandler(motion),
		handlers.NewVisionHandler(camera, st),
		handlers.NewSchoolHandler(motion, st),
		handlers.NewAIHandler(aiClient),
		handlers.NewSearchHandler(searchClient),
	)
	if err != nil {
		slog.Error("building handler registry", "error", err)
		os.Exit(1)
	}

	manager := brain.NewTaskManager(
		intent.NewRecognizer(),
		router.New(),
		registry,
		st,
		contexts,
		aiClient,
		speaker,
		cfg.Session,
		slog.Default(),
	)

	go metrics.Serve(cfg.Metrics.Addr)
	go platform.ReadUtterances(ctx, os.Stdin, manager.SubmitUtterance)

	if err := manager.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("task manager error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
