// Package server initializes and runs the roomstats ingestion service.
// It creates the shared connection pool, optionally migrates the schema,
// handles graceful shutdown and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/logging"
	"github.com/dmitrijs2005/roomstats/internal/server/config"
	"github.com/dmitrijs2005/roomstats/internal/server/httpapi"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/repomanager"
)

type App struct {
	config *config.Config
	logger logging.Logger
	pool   *dbx.PgxPool
	repos  repomanager.RepositoryManager
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	pool, err := dbx.NewPgxPool(ctx, c.DatabaseDSN(), int32(c.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if c.Migrate {
		db := pool.DB()
		err := rm.RunMigrations(ctx, db)
		db.Close()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
		logger.Info(ctx, "Migrations applied")
	}

	return &App{config: c, logger: logger, pool: pool, repos: rm}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := httpapi.NewServer(app.config.ListenAddr, app.logger, app.pool, app.repos,
		httpapi.WithReadHeaderTimeout(app.config.ReadHeaderTimeout),
		httpapi.WithShutdownTimeout(app.config.ShutdownTimeout),
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run blocks until ctx is cancelled or a termination signal arrives, then
// closes the pool once the server has stopped.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "pool_size", app.pool.MaxConns())

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.pool.Close()
	app.logger.Info(ctx, "App stopped")

	return runErr
}
