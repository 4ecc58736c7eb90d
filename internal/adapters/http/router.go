package httpadapter

import (
	"net/http"

	"github.com/hireloop/interview-service/internal/config"
	"github.com/hireloop/interview-service/internal/core/ports"
	"github.com/hireloop/interview-service/internal/observability/metrics"
)

const serviceName = "interview-api"

type Router struct {
	cfg     config.Config
	metrics *metrics.HTTPServerMetrics

	candidates    ports.CandidateService
	interviews    ports.InterviewService
	recordings    ports.RecordingService
	evaluations   ports.EvaluationService
	analytics     ports.AnalyticsService
	notifications ports.NotificationService
}

func NewRouter(
	cfg config.Config,
	m *metrics.HTTPServerMetrics,
	candidates ports.CandidateService,
	interviews ports.InterviewService,
	recordings ports.RecordingService,
	evaluations ports.EvaluationService,
	analytics ports.AnalyticsService,
	notifications ports.NotificationService,
) *Router {
	return &Router{
		cfg:           cfg,
		metrics:       m,
		candidates:    candidates,
		interviews:    interviews,
		recordings:    recordings,
		evaluations:   evaluations,
		analytics:     analytics,
		notifications: notifications,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", rt.healthz)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}

	mux.HandleFunc("GET /api/candidates", rt.listCandidates)
	mux.HandleFunc("POST /api/candidates", rt.createCandidate)
	mux.HandleFunc("GET /api/candidates/{id}", rt.getCandidate)
	mux.HandleFunc("PUT /api/candidates/{id}", rt.updateCandidate)
	mux.HandleFunc("DELETE /api/candidates/{id}", rt.deleteCandidate)

	mux.HandleFunc("GET /api/interviews", rt.listInterviews)
	mux.HandleFunc("POST /api/interviews", rt.createInterview)
	mux.HandleFunc("GET /api/interviews/upcoming/{date}", rt.upcomingInterviews)
	mux.HandleFunc("GET /api/interviews/{id}", rt.getInterview)
	mux.HandleFunc("PUT /api/interviews/{id}", rt.updateInterview)

	mux.HandleFunc("GET /api/recordings", rt.listRecordings)
	mux.HandleFunc("POST /api/recordings", rt.uploadRecording)
	mux.HandleFunc("GET /api/recordings/{id}", rt.getRecording)
	mux.HandleFunc("POST /api/recordings/{id}/transcribe", rt.transcribeRecording)

	mux.HandleFunc("GET /api/evaluations", rt.listEvaluations)
	mux.HandleFunc("POST /api/evaluations", rt.createEvaluation)
	mux.HandleFunc("POST /api/evaluations/analyze", rt.analyzeInterview)
	mux.HandleFunc("GET /api/evaluations/{id}", rt.getEvaluation)

	mux.HandleFunc("GET /api/analytics/metrics", rt.analyticsMetrics)
	mux.HandleFunc("GET /api/analytics/export", rt.analyticsExport)

	mux.HandleFunc("GET /api/notifications", rt.listNotifications)
	mux.HandleFunc("POST /api/notifications", rt.createNotification)

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
