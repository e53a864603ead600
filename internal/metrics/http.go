package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// StartPromServer serves /metrics of gatherer on addr until ctx is canceled.
// A nil gatherer exposes the default registry.
func StartPromServer(ctx context.Context, addr string, gatherer prometheus.Gatherer, log *slog.Logger) error {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	log = log.With("component", "metrics_server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shutdown metrics server", "error", err)
		}
	}()

	log.InfoContext(ctx, "Starting metrics server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
