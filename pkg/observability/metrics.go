package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Global metrics instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	Calculations  *prometheus.CounterVec
	HourPillars   prometheus.Counter
	ParseFailures prometheus.Counter
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	// Return existing collector if already created
	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	calculations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pillar_calculations_total",
			Help:      "Total number of four-pillar calculations",
		},
		[]string{"calendar_type"},
	)

	hourPillars := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hour_pillars_derived_total",
			Help:      "Total number of responses carrying a derived hour pillar",
		},
	)

	parseFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pillar_parse_failures_total",
			Help:      "Total number of unparseable calendar-library outputs",
		},
	)

	registry.MustRegister(httpRequests, httpDuration, calculations, hourPillars, parseFailures)

	globalCollector = &Collector{
		registry:      registry,
		HTTPRequests:  httpRequests,
		HTTPDuration:  httpDuration,
		Calculations:  calculations,
		HourPillars:   hourPillars,
		ParseFailures: parseFailures,
	}
	return globalCollector
}

// Handler exposes the collector's registry for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a completed HTTP request
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCalculation records a pillar calculation by calendar type
func (c *Collector) RecordCalculation(calendarType string) {
	c.Calculations.WithLabelValues(calendarType).Inc()
}

// RecordHourPillar records a response that carried an hour pillar
func (c *Collector) RecordHourPillar() {
	c.HourPillars.Inc()
}

// RecordParseFailure records an unparseable calendar-library output
func (c *Collector) RecordParseFailure() {
	c.ParseFailures.Inc()
}
