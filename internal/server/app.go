// Package server wires storage, services and the gRPC and HTTP front ends of
// Galactic Quest, and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/cache"
	"github.com/dmitrijs2005/galacticquest/internal/server/config"
	"github.com/dmitrijs2005/galacticquest/internal/server/httpapi"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
	"github.com/dmitrijs2005/galacticquest/internal/server/tracing"

	gs "github.com/dmitrijs2005/galacticquest/internal/server/grpc"
)

// Version is reported in trace resources.
var Version = "dev"

type App struct {
	config     *config.Config
	logger     logging.Logger
	grpcServer *gs.GRPCServer
	httpServer *httpapi.Server
	closers    []func(context.Context) error
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func newLogger(format string) (logging.Logger, func(context.Context) error, error) {
	switch format {
	case "", "json":
		return logging.NewJSONSlogLogger(os.Stdout), nil, nil
	case "zap":
		z, err := logging.NewZapFromMode("prod")
		if err != nil {
			return nil, nil, fmt.Errorf("zap init error: %w", err)
		}
		return z, func(context.Context) error { _ = z.Sync(); return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", format)
	}
}

func (app *App) newRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	switch app.config.Storage {
	case config.StorageMemory:
		app.logger.Warn(ctx, "Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	case config.StoragePostgres:
		db, err := openDB(app.config.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		app.closers = append(app.closers, func(context.Context) error { return db.Close() })

		rm, err := repomanager.NewPostgresRepositoryManager(db)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := rm.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		return rm, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", app.config.Storage)
	}
}

func (app *App) newLeaderboardCache(ctx context.Context) services.LeaderboardCache {
	if app.config.RedisAddr == "" {
		return nil
	}
	lc, rdb, err := cache.NewLeaderboardCache(ctx, app.config.RedisAddr, app.config.LeaderboardCacheTTL)
	if err != nil {
		app.logger.Warn(ctx, "Leaderboard cache disabled", "error", err)
		return nil
	}
	app.closers = append(app.closers, func(context.Context) error { return rdb.Close() })
	return lc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, flush, err := newLogger(c.LogFormat)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}
	if flush != nil {
		app.closers = append(app.closers, flush)
	}

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:  c.TracingEnabled,
		Endpoint: c.TracingEndpoint,
		Version:  Version,
	}, logger)
	if err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("tracing init error: %w", err)
	}
	app.closers = append(app.closers, shutdownTracing)

	repos, err := app.newRepositories(ctx)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	achievements := services.NewAchievementService(repos, logger)
	if err := achievements.Seed(ctx); err != nil {
		app.close(ctx)
		return nil, fmt.Errorf("achievements seed error: %w", err)
	}

	svc := httpapi.Services{
		Users:        services.NewUserService(repos, c, logger),
		Progression:  services.NewProgressionService(repos, c.ProgressionMaxAttempts, logger),
		Categories:   services.NewCategoryService(repos, logger),
		Skills:       services.NewSkillService(repos, logger),
		TimeLogs:     services.NewTimeLogService(repos),
		Leaderboard:  services.NewLeaderboardService(repos, app.newLeaderboardCache(ctx), logger),
		Achievements: achievements,
		Stats:        services.NewStatsService(repos),
		Export:       services.NewExportService(repos, c, logger),
	}

	app.grpcServer = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gs.Deps{
		Users:       svc.Users,
		Categories:  svc.Categories,
		Skills:      svc.Skills,
		Progression: svc.Progression,
		TimeLogs:    svc.TimeLogs,
		Leaderboard: svc.Leaderboard,
		Export:      svc.Export,
	})
	app.httpServer = httpapi.NewServer(c.EndpointAddrHTTP, httpapi.NewRouter(svc, logger), logger)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// close releases resources in reverse order of acquisition.
func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}
	app.closers = nil
}

// Run serves both APIs until ctx is cancelled, a signal arrives, or either
// server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	run := func(name string, fn func(context.Context) error) {
		defer wg.Done()
		if err := fn(ctx); err != nil {
			app.logger.Error(ctx, name+" server error", "error", err)
			cancelFunc()
		}
	}

	wg.Add(2)
	go run("gRPC", app.grpcServer.Run)
	go run("HTTP", app.httpServer.Run)

	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.close(shutdownCtx)

	app.logger.Info(shutdownCtx, "App stopped")
}
