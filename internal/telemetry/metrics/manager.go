package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  *prometheus.CounterVec
	CounterRateLimitedRequests prometheus.Counter
	CounterSessionsStarted     *prometheus.CounterVec
	CounterSessionsFinished    prometheus.Counter
	CounterExercisesLogged     *prometheus.CounterVec
	CounterExercisesSkipped    prometheus.Counter
	CounterCleanupDeleted      prometheus.Counter
	CounterCleanupCompleted    prometheus.Counter
	CounterCleanupFailures     prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistCleanupPassDuration  prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymlog", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymlog", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of handler panics, per route template",
	}, []string{"route"})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterSessionsStarted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_started",
		Help:      "Number of started workout sessions",
	}, []string{"kind"})
	counterSessionsFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_finished",
		Help:      "Number of workout sessions finished by their owner",
	})
	counterExercisesLogged := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_logged",
		Help:      "Number of logged exercise executions",
	}, []string{"source"})
	counterExercisesSkipped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_skipped",
		Help:      "Number of plan exercises marked as skipped",
	})
	counterCleanupDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cleanup_sessions_deleted",
		Help:      "Number of stale empty sessions deleted by the cleanup",
	})
	counterCleanupCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cleanup_sessions_completed",
		Help:      "Number of stale sessions auto completed by the cleanup",
	})
	counterCleanupFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cleanup_pass_failures",
		Help:      "Number of failed cleanup passes",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histCleanupPassDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cleanup_pass_duration_seconds",
		Help:      "Duration of a single stale session cleanup pass in seconds",
		Buckets:   []float64{.001, .01, .1, .5, 1, 5, 10, 30, 60, 120},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterSessionsStarted:     counterSessionsStarted,
		CounterSessionsFinished:    counterSessionsFinished,
		CounterExercisesLogged:     counterExercisesLogged,
		CounterExercisesSkipped:    counterExercisesSkipped,
		CounterCleanupDeleted:      counterCleanupDeleted,
		CounterCleanupCompleted:    counterCleanupCompleted,
		CounterCleanupFailures:     counterCleanupFailures,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistCleanupPassDuration:    histCleanupPassDuration,
	}
}
