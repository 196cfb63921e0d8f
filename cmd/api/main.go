package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/repository/sqlite"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
)

type repositories struct {
	jobs     domain.JobRepository
	messages domain.MessageRepository
	schema   domain.SchemaRepository
	ping     usecase.Pinger
	close    func()
}

// @title           Job Board API
// @version         1.0
// @description     Jobs and messages for the blue-collar job board.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board API", "port", cfg.Port, "driver", cfg.DBDriver)

	// 3. Setup Database
	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repos.close()

	// 4. Setup Redis (optional, rate limiting only)
	checks := map[string]usecase.Pinger{"database": repos.ping}
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		} else {
			defer redis.Close()
			checks["redis"] = redis.HealthCheck
		}
	}

	// 5. Setup UseCases
	jobUC := usecase.NewJobUsecase(repos.jobs, logger.Log)
	messageUC := usecase.NewMessageUsecase(repos.messages, logger.Log)
	catalogUC := usecase.NewCatalogUsecase(seed.JobTypes, seed.Locations)
	bootstrapUC := usecase.NewBootstrapUsecase(repos.schema, seed.Jobs, logger.Log)
	healthUC := usecase.NewHealthUsecase(checks)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:       jobUC,
		MessageUC:   messageUC,
		CatalogUC:   catalogUC,
		BootstrapUC: bootstrapUC,
		HealthUC:    healthUC,
		PostLimiter: middleware.RateLimitMiddleware(
			middleware.PostRateLimitConfig(cfg.RateLimitPostThreshold, cfg.RateLimitWindow()),
		),
		Config: cfg,
		Logger: logger.Log,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return &repositories{
			jobs:     postgres.NewJobRepository(pool),
			messages: postgres.NewMessageRepository(pool),
			schema:   postgres.NewSchemaRepository(pool),
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &repositories{
			jobs:     sqlite.NewJobRepository(db),
			messages: sqlite.NewMessageRepository(db),
			schema:   sqlite.NewSchemaRepository(db),
			ping:     db.PingContext,
			close:    func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
