package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type processFn func(ctx context.Context) error

type Scheduler struct {
	check         processFn
	checkInterval time.Duration
	cronSpec      string
	loc           *time.Location

	calendarCleanup         processFn
	calendarCleanupInterval time.Duration
	log                     *slog.Logger
}

// NewScheduler runs check once right away and then every interval.
func NewScheduler(check processFn, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		check:         check,
		checkInterval: interval,
		loc:           time.Local,
		log:           log.With("component", "scheduler"),
	}
}

// WithCron replaces the interval with a cron schedule (standard 5 field spec or descriptors like @hourly).
func (s *Scheduler) WithCron(spec string, loc *time.Location) *Scheduler {
	s.cronSpec = spec
	if loc != nil {
		s.loc = loc
	}
	return s
}

// WithCalendarCleanup adds a calendar stale-cleanup job. If fn is nil, no goroutine is started.
func (s *Scheduler) WithCalendarCleanup(fn processFn, interval time.Duration) *Scheduler {
	s.calendarCleanup = fn
	s.calendarCleanupInterval = interval
	return s
}

// Start blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	var c *cron.Cron
	if s.cronSpec != "" {
		c = cron.New(cron.WithLocation(s.loc))
		if _, err := c.AddFunc(s.cronSpec, func() { s.runOnce(ctx, "check", s.check) }); err != nil {
			return fmt.Errorf("schedule check with cron spec=%q: %w", s.cronSpec, err)
		}
	}

	s.runOnce(ctx, "check", s.check)

	wg := &sync.WaitGroup{}
	if c != nil {
		wg.Go(func() {
			s.runCron(ctx, c)
		})
	} else {
		wg.Go(func() {
			s.run(ctx, s.checkInterval, "check", s.check)
		})
	}
	if s.calendarCleanup != nil && s.calendarCleanupInterval > 0 {
		wg.Go(func() {
			s.run(ctx, s.calendarCleanupInterval, "calendar_cleanup", s.calendarCleanup)
		})
	}

	wg.Wait()
	return nil
}

func (s *Scheduler) runCron(ctx context.Context, c *cron.Cron) {
	log := s.log.With("process", "check", "cron", s.cronSpec)
	log.InfoContext(ctx, "Starting cron scheduler")
	c.Start()

	<-ctx.Done()
	stopCtx := c.Stop() // waits for running jobs
	<-stopCtx.Done()
	log.InfoContext(ctx, "Stopped scheduler")
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, process string, fn processFn) {
	log := s.log.With("process", process)
	defer func() {
		log.InfoContext(ctx, "Stopped scheduler")
	}()

	log.InfoContext(ctx, "Starting scheduler", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			s.runOnce(ctx, process, fn)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, process string, fn processFn) {
	log := s.log.With("process", process)
	err := withRecovery(ctx, fn, log)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.InfoContext(ctx, "Action execution interrupted", "error", err)
		return
	}
	log.ErrorContext(ctx, "Failed to run process", "error", err)
}

func withRecovery(ctx context.Context, fn processFn, log *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Recovered from panic", "error", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}
