package httpadapter

import (
	"net/http"
	"strings"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func (rt *Router) createEvaluation(w http.ResponseWriter, r *http.Request) {
	var evaluation domain.Evaluation
	if err := decodeJSON(r, &evaluation); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	created, err := rt.evaluations.Create(r.Context(), &evaluation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (rt *Router) listEvaluations(w http.ResponseWriter, r *http.Request) {
	filter := domain.EvaluationFilter{
		CandidateID: r.URL.Query().Get("candidate_id"),
		InterviewID: r.URL.Query().Get("interview_id"),
	}

	evaluations, err := rt.evaluations.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluations)
}

func (rt *Router) getEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluation, err := rt.evaluations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluation)
}

func (rt *Router) analyzeInterview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InterviewID string `json:"interview_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if strings.TrimSpace(body.InterviewID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "interview_id is required"})
		return
	}

	evaluation, err := rt.evaluations.Analyze(r.Context(), body.InterviewID)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordEvaluation(serviceName, "error")
		}
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordEvaluation(serviceName, "ok")
	}
	writeJSON(w, http.StatusCreated, evaluation)
}
