package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	transcriptionsTotal *prometheus.CounterVec
	evaluationsTotal    *prometheus.CounterVec
	notificationsTotal  *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ivs",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ivs",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ivs",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	transcriptionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ivs",
			Subsystem: "ai",
			Name:      "transcriptions_total",
			Help:      "Total explicit transcription requests by status.",
		},
		[]string{"service", "status"},
	)
	evaluationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ivs",
			Subsystem: "ai",
			Name:      "evaluations_total",
			Help:      "Total AI evaluation requests by status.",
		},
		[]string{"service", "status"},
	)
	notificationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ivs",
			Subsystem: "mail",
			Name:      "notifications_total",
			Help:      "Total notification dispatches by sent state.",
		},
		[]string{"service", "state"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		transcriptionsTotal,
		evaluationsTotal,
		notificationsTotal,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		transcriptionsTotal: transcriptionsTotal,
		evaluationsTotal:    evaluationsTotal,
		notificationsTotal:  notificationsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordTranscription(service, status string) {
	m.transcriptionsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordEvaluation(service, status string) {
	m.evaluationsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordNotification(service, state string) {
	m.notificationsTotal.WithLabelValues(service, state).Inc()
}

// normalizePath collapses resource ids so the path label stays low
// cardinality.
func normalizePath(path string) string {
	for _, resource := range []string{"candidates", "interviews", "recordings", "evaluations", "notifications"} {
		prefix := "/api/" + resource + "/"
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		switch {
		case resource == "interviews" && strings.HasPrefix(rest, "upcoming/"):
			return prefix + "upcoming/{date}"
		case strings.HasSuffix(rest, "/transcribe"):
			return prefix + "{id}/transcribe"
		case rest == "analyze":
			return path
		default:
			return prefix + "{id}"
		}
	}
	return path
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
