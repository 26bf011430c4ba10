// Package metrics provides Prometheus metrics for the scouting
// histogram jobs. A job normally runs to completion, so the registry is
// only scraped when the tool is started with a metrics address.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the Prometheus metrics of one processing job.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	eventsRead     prometheus.Counter
	eventsKept     prometheus.Counter
	triggerAccepts *prometheus.CounterVec
	histFills      prometheus.Counter
	filesProcessed prometheus.Counter
	fileDuration   prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "axoplot",
		subsystem: "processor",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.eventsRead = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_read_total",
		Help:      "Total number of events read from input files",
	})
	m.eventsKept = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_kept_total",
		Help:      "Total number of events surviving the quality cuts",
	})
	m.triggerAccepts = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "trigger_accepts_total",
			Help:      "Total number of accepted events by trigger path",
		},
		[]string{"trigger"},
	)
	m.histFills = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "histogram_fills_total",
		Help:      "Total number of histogram fill operations",
	})
	m.filesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_processed_total",
		Help:      "Total number of input files fully scanned",
	})
	m.fileDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "file_process_seconds",
		Help:      "Wall-clock time spent scanning one input file",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	})

	return m
}

// RecordEventRead counts one event read from an input file.
func RecordEventRead() {
	globalManager.eventsRead.Inc()
}

// RecordEventKept counts one event surviving the quality cuts.
func RecordEventKept() {
	globalManager.eventsKept.Inc()
}

// RecordTriggerAccept counts one accepted event for a trigger path.
func RecordTriggerAccept(trigger string) {
	globalManager.triggerAccepts.WithLabelValues(trigger).Inc()
}

// RecordHistFills counts n histogram fill operations.
func RecordHistFills(n int) {
	globalManager.histFills.Add(float64(n))
}

// RecordFileProcessed counts a fully scanned file and its duration.
func RecordFileProcessed(seconds float64) {
	globalManager.filesProcessed.Inc()
	globalManager.fileDuration.Observe(seconds)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler returns an HTTP handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
