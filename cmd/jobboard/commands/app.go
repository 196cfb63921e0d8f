package commands

import (
	"context"
	"fmt"
	"log/slog"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/chat"
	"go-jobboard-backend/internal/datasource"
	"go-jobboard-backend/internal/repository/hybrid"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/session"
	"go-jobboard-backend/pkg/apiclient"
	"go-jobboard-backend/pkg/eventbus"
	"go-jobboard-backend/pkg/kvstore"
	"go-jobboard-backend/pkg/redis"
)

// App wires the client toolkit the commands drive.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    kvstore.Store
	Bus      *eventbus.Bus
	Mode     *datasource.Selector
	API      *apiclient.Client
	MockJobs *memory.JobStore
	Jobs     *hybrid.JobRepository
	Messages *hybrid.MessageBoard
	Chat     *chat.Simulator
	Session  *session.Manager

	close func()
}

func NewApp(cfg *config.Config, store kvstore.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	bus := eventbus.New(logger)
	mode := datasource.NewSelector(store, bus, logger)
	api := apiclient.New(apiclient.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  logger,
	})
	mockJobs := memory.NewJobStore(seed.Jobs())

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Bus:      bus,
		Mode:     mode,
		API:      api,
		MockJobs: mockJobs,
		Jobs: hybrid.NewJobRepository(hybrid.Options{
			Mode:             mode,
			Remote:           api,
			Store:            mockJobs,
			Bus:              bus,
			FallbackOnCreate: cfg.FallbackOnCreate,
			Logger:           logger,
		}),
		Messages: hybrid.NewMessageBoard(api, bus, logger),
		Chat:     chat.NewSimulator(chat.Options{Store: store, Bus: bus, Logger: logger}),
		Session:  session.NewManager(store, nil),
		close:    func() {},
	}
}

func (a *App) Close() {
	a.close()
}

// OpenStore returns the client storage selected by CLIENT_STORE.
func OpenStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.ClientStore {
	case "memory":
		return kvstore.NewMemory(), func() {}, nil
	case "redis":
		client, err := redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedis(client, "jobboard:"), func() { _ = client.Close() }, nil
	case "file", "":
		store, err := kvstore.NewFile(cfg.ClientStorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported CLIENT_STORE %q", cfg.ClientStore)
	}
}

func openApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open client store: %w", err)
	}
	app := NewApp(cfg, store, nil)
	app.close = closeStore
	return app, nil
}
