package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Store metrics
	StoreActions     *prometheus.CounterVec
	StoreSubscribers prometheus.Gauge

	// Toast metrics
	ToastsShown     prometheus.Counter
	ToastsDismissed *prometheus.CounterVec

	// Session metrics
	IdleWarnings    prometheus.Counter
	SessionsExpired prometheus.Counter
	SessionsResumed prometheus.Counter

	// Report cache metrics
	ReportCacheHits   prometheus.Counter
	ReportCacheMisses prometheus.Counter
}

// NewMetrics creates and registers all application metrics against reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry so
// repeated construction never collides.
func NewMetrics(namespace, subsystem string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		StoreActions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_actions_total",
			Help:      "Total store mutations by action",
		}, []string{"action"}),
		StoreSubscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_subscribers",
			Help:      "Current number of store change subscribers",
		}),
		ToastsShown: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "toasts_shown_total",
			Help:      "Total toasts shown",
		}),
		ToastsDismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "toasts_dismissed_total",
			Help:      "Total toasts dismissed by reason",
		}, []string{"reason"}),
		IdleWarnings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "idle_warnings_total",
			Help:      "Total idle warnings shown",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_expired_total",
			Help:      "Total sessions ended after an unanswered idle warning",
		}),
		SessionsResumed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_resumed_total",
			Help:      "Total sessions resumed from the idle warning",
		}),
		ReportCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "report_cache_hits_total",
			Help:      "Total billing report cache hits",
		}),
		ReportCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "report_cache_misses_total",
			Help:      "Total billing report cache misses",
		}),
	}
}

// Toast dismissal reasons.
const (
	DismissAuto       = "auto"
	DismissManual     = "manual"
	DismissSuperseded = "superseded"
)
