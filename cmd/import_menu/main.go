package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"menuapp/internal/cache"
	"menuapp/internal/config"
	"menuapp/internal/db"
	"menuapp/internal/importer"
	applog "menuapp/internal/log"
)

var (
	loadConfig   = config.Load
	openDatabase = db.Configure
	openCache    = cache.Open
)

var stdout io.Writer = os.Stdout

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(context.Background(), path); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("locate spreadsheet: %w", err)
		}
		cfg.Import.XLSXPath = path
	}

	database, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	store, err := openCache(ctx, cfg.Cache)
	if err != nil {
		applog.Warn(ctx, "redis unavailable, cached responses will expire on their own", "error", err)
		store = cache.Noop{}
	}
	defer store.Close()

	imp := importer.New(database, cfg.Import, func(ctx context.Context) {
		if err := store.Flush(ctx); err != nil {
			applog.Warn(ctx, "cache flush failed", "error", err)
		}
	})

	result, err := imp.Sync(ctx)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Fprintf(stdout, "import skipped: %s\n", result.Reason)
		return nil
	}
	fmt.Fprintf(stdout, "imported %d menus, %d submenus, %d dishes from %s (%d written, %d removed, %d rows ignored)\n",
		result.Menus, result.Submenus, result.Dishes, result.Source, result.Written, result.Deleted, result.Ignored)
	return nil
}
