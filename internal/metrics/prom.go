package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "outage_notifier"

// PromRecorder records check cycle events in Prometheus metrics.
type PromRecorder struct {
	checks        *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	exports       *prometheus.CounterVec
}

// NewPromRecorder registers the collectors on reg. If reg is nil, the default
// registerer is used. Already registered collectors are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	checks, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checks_total",
		Help:      "Total number of schedule checks by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	checkDuration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "check_duration_seconds",
		Help:      "Duration of schedule checks",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	notifications, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of channel posts by delivery result",
	}, []string{"delivered"}))
	if err != nil {
		return nil, err
	}
	exports, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of schedule exports by exporter and result",
	}, []string{"exporter", "ok"}))
	if err != nil {
		return nil, err
	}

	return &PromRecorder{
		checks:        checks,
		checkDuration: checkDuration,
		notifications: notifications,
		exports:       exports,
	}, nil
}

func (r *PromRecorder) ObserveCheck(outcome string, elapsed time.Duration) {
	r.checks.WithLabelValues(outcome).Inc()
	r.checkDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (r *PromRecorder) IncNotification(delivered bool) {
	r.notifications.WithLabelValues(strconv.FormatBool(delivered)).Inc()
}

func (r *PromRecorder) IncExport(exporter string, ok bool) {
	r.exports.WithLabelValues(exporter, strconv.FormatBool(ok)).Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
