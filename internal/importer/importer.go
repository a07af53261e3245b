// Package importer keeps the database in sync with the menu spreadsheet.
package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"

	"menuapp/internal/config"
	applog "menuapp/internal/log"
)

const defaultTimeout = 30 * time.Second

// Result describes the outcome of one synchronization.
type Result struct {
	Source      string `json:"source,omitempty"`
	Revision    string `json:"revision,omitempty"`
	NewRevision bool   `json:"new_revision"`
	Skipped     bool   `json:"skipped"`
	Reason      string `json:"reason,omitempty"`
	Ignored     int    `json:"ignored_rows"`
	Stats
}

// Importer reconciles the database with the configured spreadsheet.
type Importer struct {
	db       *gorm.DB
	cfg      config.ImportConfig
	client   *http.Client
	onChange func(context.Context)

	mu        sync.Mutex
	digest    uint64
	hasDigest bool
}

// New builds an Importer. onChange runs after every run that modified the
// database and may be nil.
func New(db *gorm.DB, cfg config.ImportConfig, onChange func(context.Context)) *Importer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Importer{
		db:       db,
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		onChange: onChange,
	}
}

// Sync runs one synchronization. Concurrent calls are serialized.
func (i *Importer) Sync(ctx context.Context) (Result, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, i.cfg.Timeout)
	defer cancel()

	src, err := i.loadSource(ctx)
	if errors.Is(err, ErrNoSource) {
		applog.Debug(ctx, "import skipped, no source available")
		return Result{Skipped: true, Reason: "no source available"}, nil
	}
	if err != nil {
		return Result{}, err
	}

	digest := xxhash.Sum64(src.raw)
	newRevision := !i.hasDigest || digest != i.digest

	rows, err := src.rows()
	if err != nil {
		return Result{}, err
	}
	snap := ParseRows(ctx, rows)

	stats, err := Reconcile(ctx, i.db, snap)
	if err != nil {
		return Result{}, err
	}
	i.digest, i.hasDigest = digest, true

	attrs := []any{
		"source", src.name,
		"menus", stats.Menus,
		"submenus", stats.Submenus,
		"dishes", stats.Dishes,
		"written", stats.Written,
		"deleted", stats.Deleted,
		"ignored", snap.Ignored,
	}
	if newRevision || stats.Changed() {
		applog.Info(ctx, "import completed", attrs...)
	} else {
		applog.Debug(ctx, "import completed, database already in sync", attrs...)
	}

	if stats.Changed() && i.onChange != nil {
		i.onChange(ctx)
	}
	return Result{
		Source:      src.name,
		Revision:    fmt.Sprintf("%016x", digest),
		NewRevision: newRevision,
		Ignored:     snap.Ignored,
		Stats:       stats,
	}, nil
}
