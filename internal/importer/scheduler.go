package importer

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	applog "menuapp/internal/log"
)

// cronLogger routes scheduler messages through the application logger.
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	applog.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	applog.Error(l.ctx, "cron: "+msg, append(keysAndValues, "error", err)...)
}

// Scheduler runs an Importer on a cron schedule.
type Scheduler struct {
	ctx  context.Context
	cron *cron.Cron
	imp  *Importer

	// tracks the run launched by Start outside of the cron loop
	initial sync.WaitGroup
}

// NewScheduler registers the periodic synchronization. Runs that overlap a
// still running one are skipped.
func NewScheduler(ctx context.Context, spec string, imp *Importer) (*Scheduler, error) {
	logger := cronLogger{ctx: ctx}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := c.AddFunc(spec, func() { runOnce(ctx, imp) }); err != nil {
		return nil, fmt.Errorf("schedule import %q: %w", spec, err)
	}
	return &Scheduler{ctx: ctx, cron: c, imp: imp}, nil
}

func runOnce(ctx context.Context, imp *Importer) {
	if _, err := imp.Sync(ctx); err != nil {
		applog.Error(ctx, "scheduled import failed", "error", err)
	}
}

// Start launches the schedule and an immediate first run.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		runOnce(s.ctx, s.imp)
	}()
}

// Stop halts the schedule and waits for every running import to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
}
