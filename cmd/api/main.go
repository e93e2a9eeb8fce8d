package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the service and blocks until it is interrupted. Deferred
// cleanup always runs before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("prepare schema: %w", err)
	}

	// Redis is optional: without it categories are read from Postgres
	// every time and quizzes are not rate limited.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, running without cache", slog.String("error", err.Error()))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Initialize repositories
	questionRepo := postgres.NewQuestionRepository(pool)
	var categoryRepo domain.CategoryRepository = postgres.NewCategoryRepository(pool)
	if redisClient != nil {
		categoryRepo = cache.NewCategoryCache(categoryRepo, redisClient, cfg.Cache.CategoryTTL, log)
	}

	// Initialize websocket hub
	hub := websocket.NewHub(log)
	go hub.Run(ctx)

	// Initialize services
	questionService := service.NewQuestionService(questionRepo, categoryRepo, hub, log)
	quizService := service.NewQuizService(questionRepo, service.QuizSettings{
		AllCategoriesType: cfg.Quiz.AllCategoriesType,
		CategoryOffset:    cfg.Quiz.CategoryOffset,
	})

	// Initialize Echo and handlers
	e := handler.New(log)
	e.Server.ReadTimeout = cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.WriteTimeout

	handler.NewQuestionHandler(questionService, log).Register(e)
	handler.NewWebSocketHandler(hub).Register(e)
	handler.NewHealthHandler(pool).Register(e)

	quizHandler := handler.NewQuizHandler(quizService, questionService, log)
	if redisClient != nil {
		limiter := cache.NewRateLimiter(redisClient, cfg.Quiz.RateLimit, cfg.Quiz.RateWindow)
		quizHandler.Register(e, handler.RateLimit(limiter, log))
	} else {
		quizHandler.Register(e)
	}

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", cfg.HTTP.Addr), slog.String("env", cfg.Env))
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// setupLogger returns a text logger for development and JSON otherwise
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
