package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"gorm.io/gorm"

	"menuapp/internal/cache"
	"menuapp/internal/config"
	"menuapp/internal/db"
	"menuapp/internal/db/mock"
	"menuapp/internal/importer"
	applog "menuapp/internal/log"
	"menuapp/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

type schedulerLifecycle interface {
	Start()
	Stop()
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	openCacheFunc       = cache.Open
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	newSchedulerFunc = func(ctx context.Context, spec string, imp *importer.Importer) (schedulerLifecycle, error) {
		return importer.NewScheduler(ctx, spec, imp)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	var database *gorm.DB
	if cfg.Database.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		database, err = newMockDatabaseFunc(ctx)
	} else {
		database, err = configureDatabase(cfg.Database)
	}
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		return 1
	}

	store, err := openCacheFunc(ctx, cfg.Cache)
	if err != nil {
		applog.Warn(ctx, "redis unavailable, response cache disabled", "error", err)
		store = cache.Noop{}
	}

	serverCfg := server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Database:       database,
		Cache:          store,
	}

	// imports flush the cache, so they must end before the server closes it
	stopImport := func() {}
	if cfg.Import.Enabled {
		imp := importer.New(database, cfg.Import, func(ctx context.Context) {
			if err := store.Flush(ctx); err != nil {
				applog.Warn(ctx, "cache flush after import failed", "error", err)
			}
		})
		scheduler, err := newSchedulerFunc(ctx, cfg.Import.Schedule, imp)
		if err != nil {
			applog.Error(ctx, "failed to schedule import", "error", err)
			return 1
		}
		serverCfg.Importer = imp
		scheduler.Start()
		stopImport = sync.OnceFunc(scheduler.Stop)
		defer stopImport()
		applog.Info(ctx, "spreadsheet import scheduled", "schedule", cfg.Import.Schedule, "path", cfg.Import.XLSXPath)
	}

	srv, err := newServerFunc(serverCfg)
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, stopSignals := subscribeShutdownSig()
	defer stopSignals()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		stopImport()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
		return 0
	case sig := <-sigCh:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	case <-ctx.Done():
		applog.Info(ctx, "shutting down http server", "reason", ctx.Err())
	}

	stopImport()
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server encountered an error", "error", err)
		return 1
	}
	return 0
}
