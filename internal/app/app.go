package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"creativestyle/config"
	"creativestyle/internal/cache"
	"creativestyle/internal/catalog"
	"creativestyle/internal/event"
	"creativestyle/internal/logger"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
	"creativestyle/internal/service"
	"creativestyle/internal/transport/rest"
	"creativestyle/internal/transport/ws"
)

// App holds every long-lived dependency of the server
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Catalog   *catalog.Catalog
	Engine    *scoring.Engine
	Store     *repository.Store
	Responses repository.ResponseRepo
	Redis     *redis.Client
	Stats     cache.StatsCache
	Publisher *event.EventPublisher
	Hub       *ws.Hub

	AuthService       *service.AuthService
	SubmissionService *service.SubmissionService
	ResultService     *service.ResultService
	AdminService      *service.AdminService
}

// New loads static data, connects backends and wires services. Catalog or
// matrix problems surface as scoring.ErrConfiguration.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	cat, err := catalog.LoadQuestions(cfg.Data.ScaleQuestions, optionalFile(cfg.Data.TextQuestions))
	if err != nil {
		return nil, err
	}
	matrix, err := catalog.LoadMatrix(cfg.Data.CreativeMatrix)
	if err != nil {
		return nil, err
	}
	if n := matrix.Dropped(); n > 0 {
		log.Warn("preference matrix contained duplicates", "dropped", n)
	}
	engine, err := scoring.NewEngine(cat.ScaleQuestions, cat.Scale, matrix, log)
	if err != nil {
		return nil, err
	}
	a.Catalog, a.Engine = cat, engine
	log.Info("catalog loaded",
		"scale_questions", len(cat.ScaleQuestions),
		"text_questions", len(cat.TextQuestions),
		"styles", matrix.Len(),
	)

	a.Store, err = openStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	log.Info("response store ready", "driver", cfg.Store.Driver)
	a.Responses = a.Store.Responses

	if cfg.RedisURI != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		if err := rdb.Ping(ctx).Err(); err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		a.Redis = rdb
		a.Responses = cache.NewResponseCache(a.Store.Responses, rdb, log)
		a.Stats = cache.NewStatsCache(rdb)
		log.Info("connected to Redis")
	} else {
		log.Warn("REDIS_URI not set, response cache and style counters disabled")
	}

	a.Publisher, err = event.NewEventPublisher(cfg.Rabbit.URI, cfg.Rabbit.Exchange, log)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.AuthService, err = service.NewAuthService(cfg.Auth)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.Hub = ws.NewHub(log)
	a.SubmissionService = service.NewSubmissionService(a.Store.Submissions, a.Responses, cat, a.Publisher, a.Hub, log)
	a.ResultService = service.NewResultService(engine, a.Store.Submissions, a.Responses, a.Stats, a.Publisher, a.Hub, log)
	a.SubmissionService.SetStyleRefresher(a.ResultService)
	a.AdminService = service.NewAdminService(a.Store.Submissions, a.Responses, engine, a.Stats, log)
	return a, nil
}

// Router builds the HTTP handler for the wired services
func (a *App) Router() http.Handler {
	return rest.NewRouter(&rest.Container{
		AuthService:       a.AuthService,
		SubmissionService: a.SubmissionService,
		ResultService:     a.ResultService,
		AdminService:      a.AdminService,
		WSHub:             a.Hub,
		Logger:            a.Log,
		AllowedOrigins:    a.Config.CORS,
	})
}

// Close releases backends in reverse order of acquisition
func (a *App) Close(ctx context.Context) {
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Log.Warn("close publisher", "error", err)
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.Store != nil {
		if err := a.Store.Close(ctx); err != nil {
			a.Log.Warn("close store", "error", err)
		}
	}
}

func openStore(ctx context.Context, cfg config.StoreConfig) (*repository.Store, error) {
	switch cfg.Driver {
	case "mongo", "mongodb":
		return repository.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return repository.NewSQLiteStore(cfg.SQLitePath)
	case "memory":
		return repository.NewMemoryStore().Store(), nil
	default:
		return nil, fmt.Errorf("%w: unknown store driver %q", scoring.ErrConfiguration, cfg.Driver)
	}
}

// optionalFile returns "" when the path does not exist so text questions stay optional.
func optionalFile(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
