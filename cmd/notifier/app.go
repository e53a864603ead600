package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tc "github.com/Roma7-7-7/telegram"
	"github.com/prometheus/client_golang/prometheus"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/outage-notifier/internal/calendar"
	"github.com/Roma7-7-7/outage-notifier/internal/config"
	"github.com/Roma7-7-7/outage-notifier/internal/dal"
	"github.com/Roma7-7-7/outage-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/outage-notifier/internal/metrics"
	"github.com/Roma7-7-7/outage-notifier/internal/providers"
	"github.com/Roma7-7-7/outage-notifier/internal/service"
	"github.com/Roma7-7-7/outage-notifier/internal/telegram"
	"github.com/Roma7-7-7/outage-notifier/pkg/clock"
)

type stateStore interface {
	service.SnapshotStore
	service.ExportStateStore
}

type app struct {
	conf     *config.Config
	log      *slog.Logger
	outages  *service.Outages
	calendar *service.CalendarExporter
	registry *prometheus.Registry

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	conf, err := config.NewConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := mustLogger(conf.Dev)
	a := &app{conf: conf, log: log, registry: prometheus.NewRegistry()}

	store, err := a.openStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	bot, err := telegram.NewBot(conf.TelegramToken)
	if err != nil {
		a.Close()
		return nil, err
	}
	notifier := telegram.NewChannelNotifier(bot, tc.NewClient(http.DefaultClient, conf.TelegramToken), conf.ChannelID, log)

	recorder, err := metrics.NewPromRecorder(a.registry)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create metrics recorder: %w", err)
	}

	imageURL := ""
	if conf.SendImage {
		imageURL = providers.ImageURL(conf.ImageURLTemplate, conf.Group)
	}
	clk := clock.New(conf.Location)

	a.outages = service.NewOutages(
		service.OutagesConfig{ChannelID: conf.ChannelID, Group: conf.Group, ImageURL: imageURL},
		providers.NewOutageDataProvider(conf.FeedURL, conf.FetchTimeout),
		store,
		notifier,
		clk,
		log,
	).WithMetrics(recorder)

	if conf.CalendarEnabled() {
		google, err := calendar.NewGoogle(ctx, conf.CalendarCredentialsPath, conf.Group)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.calendar = service.NewCalendarExporter(
			service.CalendarConfig{CalendarID: conf.CalendarID, Group: conf.Group},
			google, store, clk, log,
		)
		a.outages.WithExporters(a.calendar)
	}
	if conf.ICSPath != "" {
		a.outages.WithExporters(calendar.NewICSWriter(conf.ICSPath, conf.Group, log))
	}

	return a, nil
}

func (a *app) openStore() (stateStore, error) {
	if a.conf.StateBackend == config.StateBackendFile {
		store, err := dal.NewFileStore(a.conf.StateDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return store, nil
	}

	if err := os.MkdirAll(filepath.Dir(a.conf.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	db, err := bbolt.Open(a.conf.DBPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err = migrations.RunMigrations(db, a.log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Error("Failed to close resource", "error", err)
		}
	}
}

func runCheck(ctx context.Context, force bool) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	force = force || bool(a.conf.ForceSend)
	res, err := a.outages.CheckAndNotify(ctx, force)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "Check finished", "cycle", res.Cycle, "outcome", res.Outcome, "reasons", res.Decision.Reasons)
	return nil
}

func runReset(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.outages.Reset(ctx)
}

func runLoop(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.conf.MetricsAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, a.conf.MetricsAddr, a.registry, a.log); err != nil {
				a.log.Error("Metrics server failed", "error", err)
			}
		}()
	}

	scheduler := service.NewScheduler(func(ctx context.Context) error {
		_, err := a.outages.CheckAndNotify(ctx, false)
		return err
	}, a.conf.CheckInterval, a.log)
	if a.conf.CheckCron != "" {
		scheduler.WithCron(a.conf.CheckCron, a.conf.Location)
	}
	if a.calendar != nil {
		scheduler.WithCalendarCleanup(func(ctx context.Context) error {
			return a.calendar.CleanupStaleEvents(ctx, a.conf.CalendarLookbackDays)
		}, a.conf.CalendarCleanupInterval)
	}

	a.log.InfoContext(ctx, "Starting notifier", "group", a.conf.Group, "channel", a.conf.ChannelID)
	err = scheduler.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info("Stopped notifier")
	return nil
}
